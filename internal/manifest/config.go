package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/mcdatagen/mcdatagen"
)

// Manifest lists every asset a mod wants generated.
type Manifest struct {
	ModID   string      `yaml:"modid"`
	Locale  string      `yaml:"locale"`
	Blocks  []Block     `yaml:"blocks"`
	Items   []Item      `yaml:"items"`
	Recipes []Recipe    `yaml:"recipes"`
	Lang    []LangEntry `yaml:"lang"`
}

// BlockKind selects the blockstate builder used for a Block.
type BlockKind string

const (
	KindCubeAll BlockKind = "cube_all"
	KindStairs  BlockKind = "stairs"
	KindSlab    BlockKind = "slab"
	KindDoor    BlockKind = "door"
	KindSimple  BlockKind = "simple"
)

type Block struct {
	Name     string            `yaml:"name"`
	Kind     BlockKind         `yaml:"kind"`
	Texture  string            `yaml:"texture,omitempty"`
	Textures map[string]string `yaml:"textures,omitempty"`
	// FullModel is the model of the double slab.
	FullModel string   `yaml:"full_model,omitempty"`
	Models    []string `yaml:"models,omitempty"`
	// CraftFrom, for stairs and slabs, adds the standard recipe crafting the
	// block from this item.
	CraftFrom string `yaml:"craft_from,omitempty"`
	// SlabMeta, when set, is written as the metadata of the slab recipe result.
	SlabMeta *int `yaml:"slab_meta,omitempty"`
	// Display adds a tile.<modid>.<name>.name entry to the lang file.
	Display string `yaml:"display,omitempty"`
}

// TextureSpec returns the block's textures, or nil if it has none.
func (b Block) TextureSpec() mcdatagen.TextureSpec {
	switch {
	case len(b.Textures) > 0:
		return mcdatagen.FaceTextures(b.Textures)
	case b.Texture != "":
		return mcdatagen.SingleTexture(b.Texture)
	}
	return nil
}

type Item struct {
	Name    string   `yaml:"name"`
	Layers  []string `yaml:"layers"`
	Display string   `yaml:"display,omitempty"`
}

// Ingredient is either an item, with optional metadata, or an ore name.
type Ingredient struct {
	Item string `yaml:"item,omitempty"`
	Meta *int   `yaml:"meta,omitempty"`
	Ore  string `yaml:"ore,omitempty"`
}

func (in Ingredient) build() (mcdatagen.Ingredient, error) {
	switch {
	case in.Ore != "" && in.Item != "":
		return mcdatagen.Ingredient{}, fmt.Errorf("%w: ingredient sets both item %q and ore %q", mcdatagen.ErrInvalidArgument, in.Item, in.Ore)
	case in.Ore != "":
		if in.Meta != nil {
			return mcdatagen.Ingredient{}, fmt.Errorf("%w: ore ingredient %q cannot have meta", mcdatagen.ErrInvalidArgument, in.Ore)
		}
		return mcdatagen.OreIngredient(in.Ore), nil
	case in.Meta != nil:
		return mcdatagen.ItemIngredientMeta(in.Item, *in.Meta), nil
	}
	// an empty item is left for Ingredient.Validate to reject
	return mcdatagen.ItemIngredient(in.Item), nil
}

type Result struct {
	Item  string `yaml:"item"`
	Count int    `yaml:"count,omitempty"`
	Meta  *int   `yaml:"meta,omitempty"`
}

func (r Result) build() (mcdatagen.Result, error) {
	count := r.Count
	if count == 0 {
		count = 1
	}
	var opts []mcdatagen.ResultOption
	if r.Meta != nil {
		opts = append(opts, mcdatagen.WithMeta(*r.Meta))
	}
	return mcdatagen.NewResult(r.Item, count, opts...)
}

// RecipeKind selects how a Recipe is built.
type RecipeKind string

const (
	RecipeShaped    RecipeKind = "shaped"
	RecipeShapeless RecipeKind = "shapeless"
	RecipeSlab      RecipeKind = "slab"
	RecipeStairs    RecipeKind = "stairs"
)

type Recipe struct {
	Name string     `yaml:"name"`
	Kind RecipeKind `yaml:"kind"`
	// Pattern and Key are used by shaped recipes.
	Pattern []string              `yaml:"pattern,omitempty"`
	Key     map[string]Ingredient `yaml:"key,omitempty"`
	// Ingredients are used by shapeless recipes.
	Ingredients []Ingredient `yaml:"ingredients,omitempty"`
	// From is the parent item of slab and stairs recipes.
	From   string `yaml:"from,omitempty"`
	Result Result `yaml:"result"`
}

// LangEntry is one line of the lang file. Exactly one of the fields other
// than Value should be set; an entry with nothing set is a blank line.
type LangEntry struct {
	Header  string `yaml:"header,omitempty"`
	Comment string `yaml:"comment,omitempty"`
	Key     string `yaml:"key,omitempty"`
	Tile    string `yaml:"tile,omitempty"`
	Item    string `yaml:"item,omitempty"`
	Entity  string `yaml:"entity,omitempty"`
	Value   string `yaml:"value,omitempty"`
}

func (e LangEntry) Line() mcdatagen.LangLine {
	switch {
	case e.Header != "":
		return mcdatagen.HeaderLine(e.Header)
	case e.Comment != "":
		return mcdatagen.CommentLine(e.Comment)
	case e.Key != "":
		return mcdatagen.EntryLine(e.Key, e.Value)
	case e.Tile != "":
		return mcdatagen.TileLine(e.Tile, e.Value)
	case e.Item != "":
		return mcdatagen.ItemLine(e.Item, e.Value)
	case e.Entity != "":
		return mcdatagen.EntityLine(e.Entity, e.Value)
	}
	return mcdatagen.BlankLine()
}

func defaults() Manifest {
	return Manifest{Locale: "en_us"}
}

// Load reads and validates the manifest at path.
func Load(path string) (Manifest, error) {
	m := defaults()
	raw, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("%s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return m, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Validate checks the fields the generators cannot check themselves: names,
// kinds and the mod id. Descriptor level problems surface during generation.
func (m Manifest) Validate() error {
	var result *multierror.Error
	if strings.TrimSpace(m.ModID) == "" {
		result = multierror.Append(result, fmt.Errorf("modid is required"))
	}
	if strings.TrimSpace(m.Locale) == "" {
		result = multierror.Append(result, fmt.Errorf("locale is required"))
	}
	for i, b := range m.Blocks {
		if b.Name == "" {
			result = multierror.Append(result, fmt.Errorf("blocks[%d]: name is required", i))
		}
		switch b.Kind {
		case KindCubeAll, KindStairs, KindSlab, KindDoor, KindSimple:
		default:
			result = multierror.Append(result, fmt.Errorf("blocks[%d] %s: unknown kind %q", i, b.Name, b.Kind))
		}
		if b.Kind == KindCubeAll && b.Texture == "" {
			result = multierror.Append(result, fmt.Errorf("blocks[%d] %s: cube_all requires texture", i, b.Name))
		}
	}
	for i, it := range m.Items {
		if it.Name == "" || len(it.Layers) == 0 {
			result = multierror.Append(result, fmt.Errorf("items[%d]: name and layers are required", i))
		}
	}
	for i, r := range m.Recipes {
		if r.Name == "" {
			result = multierror.Append(result, fmt.Errorf("recipes[%d]: name is required", i))
		}
		switch r.Kind {
		case RecipeShaped, RecipeShapeless, RecipeSlab, RecipeStairs:
		default:
			result = multierror.Append(result, fmt.Errorf("recipes[%d] %s: unknown kind %q", i, r.Name, r.Kind))
		}
	}
	return result.ErrorOrNil()
}
