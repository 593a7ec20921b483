package manifest

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/mcdatagen/mcdatagen"
)

// blockSpec is a Block with its textures resolved.
type blockSpec struct {
	Block
	textures mcdatagen.TextureSpec
}

type blockstateJenny struct{}

func (blockstateJenny) JennyName() string { return "BlockstateJenny" }

func (blockstateJenny) Generate(b blockSpec) (mcdatagen.Files, error) {
	var f *mcdatagen.File
	var err error
	switch b.Kind {
	case KindCubeAll:
		f, err = mcdatagen.CubeAll(b.Name, b.Texture)
	case KindStairs:
		f, err = mcdatagen.Stairs(b.Name, b.textures)
	case KindSlab:
		return mcdatagen.Slab(b.Name, b.textures, b.FullModel)
	case KindDoor:
		f, err = mcdatagen.Door(b.Name, b.textures)
	case KindSimple:
		f, err = mcdatagen.Simple(b.Name, b.Models...)
	default:
		return nil, fmt.Errorf("unknown block kind %q", b.Kind)
	}
	if err != nil {
		return nil, err
	}
	return mcdatagen.Files{*f}, nil
}

// blockModelJenny writes the cube_all block model a cube block renders
// with, in world and in the inventory.
type blockModelJenny struct{}

func (blockModelJenny) JennyName() string { return "BlockModelJenny" }

func (blockModelJenny) Generate(b Block) (*mcdatagen.File, error) {
	return mcdatagen.CubeAllModel(b.Name, b.Texture)
}

func isCubeAll(b Block) bool { return b.Kind == KindCubeAll }

type itemJenny struct{}

func (itemJenny) JennyName() string { return "ItemJenny" }

func (itemJenny) Generate(it Item) (*mcdatagen.File, error) {
	return mcdatagen.Item(it.Name, it.Layers...)
}

type recipeJenny struct{}

func (recipeJenny) JennyName() string { return "RecipeJenny" }

func (recipeJenny) Generate(r Recipe) (*mcdatagen.File, error) {
	var opts []mcdatagen.ResultOption
	if r.Result.Meta != nil {
		opts = append(opts, mcdatagen.WithMeta(*r.Result.Meta))
	}

	switch r.Kind {
	case RecipeSlab:
		sr, err := mcdatagen.SlabRecipe(r.From, r.Result.Item, opts...)
		if err != nil {
			return nil, err
		}
		return mcdatagen.RecipeFile(r.Name, sr)
	case RecipeStairs:
		sr, err := mcdatagen.StairsRecipe(r.From, r.Result.Item)
		if err != nil {
			return nil, err
		}
		return mcdatagen.RecipeFile(r.Name, sr)
	}

	res, err := r.Result.build()
	if err != nil {
		return nil, err
	}
	switch r.Kind {
	case RecipeShaped:
		p, err := mcdatagen.ParsePattern(r.Pattern...)
		if err != nil {
			return nil, err
		}
		key := make(map[string]mcdatagen.Ingredient, len(r.Key))
		for k, in := range r.Key {
			ing, err := in.build()
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			key[k] = ing
		}
		return mcdatagen.Shaped(r.Name, p, key, res)
	case RecipeShapeless:
		ins := make([]mcdatagen.Ingredient, 0, len(r.Ingredients))
		for i, in := range r.Ingredients {
			ing, err := in.build()
			if err != nil {
				return nil, fmt.Errorf("ingredients[%d]: %w", i, err)
			}
			ins = append(ins, ing)
		}
		return mcdatagen.Shapeless(r.Name, ins, res)
	}
	return nil, fmt.Errorf("unknown recipe kind %q", r.Kind)
}

func (m Manifest) qualify(name string) string {
	return m.ModID + ":" + name
}

func (m Manifest) resolveBlock(b Block) blockSpec {
	return blockSpec{Block: b, textures: b.TextureSpec()}
}

// hasBlockRecipe reports whether b is a stairs or slab block that names
// what it is crafted from.
func hasBlockRecipe(b Block) bool {
	return b.CraftFrom != "" && (b.Kind == KindStairs || b.Kind == KindSlab)
}

// blockRecipe derives the standard recipe of a block accepted by
// hasBlockRecipe.
func (m Manifest) blockRecipe(b Block) Recipe {
	r := Recipe{Name: b.Name, Kind: RecipeStairs, From: b.CraftFrom, Result: Result{Item: m.qualify(b.Name)}}
	if b.Kind == KindSlab {
		r.Kind = RecipeSlab
		r.Result.Meta = b.SlabMeta
	}
	return r
}

// langEntries is the explicit lang section followed by the display names of
// blocks and items.
func (m Manifest) langEntries() []LangEntry {
	entries := append([]LangEntry(nil), m.Lang...)
	for _, b := range m.Blocks {
		if b.Display != "" {
			entries = append(entries, LangEntry{Tile: m.qualify(b.Name), Value: b.Display})
		}
	}
	for _, it := range m.Items {
		if it.Display != "" {
			entries = append(entries, LangEntry{Item: m.qualify(it.Name), Value: it.Display})
		}
	}
	return entries
}

// Generate runs every generator over the manifest and returns the files laid
// out under assets/<modid>/.
func Generate(m Manifest) (*mcdatagen.FS, error) {
	root := mcdatagen.AssetsRoot(m.ModID)

	blocks := mcdatagen.JennyListWithNamer(func(b Block) string { return b.Name })
	blocks.AppendOneToMany(mcdatagen.AdaptOneToMany[Block, blockSpec](blockstateJenny{}, m.resolveBlock))
	blocks.AppendOneToOne(
		mcdatagen.FilterOneToOne[Block](blockModelJenny{}, isCubeAll),
		mcdatagen.FilterOneToOne(mcdatagen.AdaptOneToOne[Block, Recipe](recipeJenny{}, m.blockRecipe), hasBlockRecipe),
	)
	blocks.AddPostprocessors(root)

	items := mcdatagen.JennyListWithNamer(func(it Item) string { return it.Name })
	items.AppendOneToOne(itemJenny{})
	items.AddPostprocessors(root)

	recipes := mcdatagen.JennyListWithNamer(func(r Recipe) string { return r.Name })
	recipes.AppendOneToOne(recipeJenny{})
	recipes.AddPostprocessors(root)

	lang := new(mcdatagen.JennyList[LangEntry])
	lang.AppendManyToOne(mcdatagen.AdaptManyToOne[LangEntry, mcdatagen.LangLine](
		mcdatagen.LangJenny{Locale: m.Locale}, LangEntry.Line))
	lang.AddPostprocessors(root)

	var result *multierror.Error
	out := mcdatagen.NewFS()
	collect := func(gfs *mcdatagen.FS, err error) {
		if err != nil {
			result = multierror.Append(result, err)
			return
		}
		if err := out.Merge(gfs); err != nil {
			result = multierror.Append(result, err)
		}
	}
	collect(blocks.GenerateFS(m.Blocks))
	collect(items.GenerateFS(m.Items))
	collect(recipes.GenerateFS(m.Recipes))
	collect(lang.GenerateFS(m.langEntries()))

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}
