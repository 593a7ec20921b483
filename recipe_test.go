package mcdatagen

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"
)

func TestNewResultCount(t *testing.T) {
	is := is.New(t)
	_, err := NewResult("mymod:gem", 0)
	is.True(errors.Is(err, ErrInvalidArgument))
	_, err = NewResult("mymod:gem", -3)
	is.True(errors.Is(err, ErrInvalidArgument))

	r, err := NewResult("mymod:gem", 1)
	is.NoErr(err)
	is.Equal(toMap(t, r), map[string]any{"item": "mymod:gem"})

	r, err = NewResult("mymod:gem", 4, WithMeta(0))
	is.NoErr(err)
	is.Equal(toMap(t, r), map[string]any{"item": "mymod:gem", "count": float64(4), "data": float64(0)})
}

func TestIngredientJSON(t *testing.T) {
	is := is.New(t)
	is.Equal(toMap(t, ItemIngredient("minecraft:dirt")), map[string]any{"item": "minecraft:dirt"})
	is.Equal(toMap(t, ItemIngredientMeta("minecraft:wool", 0)), map[string]any{"item": "minecraft:wool", "data": float64(0)})
	is.Equal(toMap(t, ItemIngredientMeta("minecraft:wool", 14)), map[string]any{"item": "minecraft:wool", "data": float64(14)})
	is.Equal(toMap(t, OreIngredient("ingotIron")), map[string]any{"type": "forge:ore_dict", "ore": "ingotIron"})

	_, err := json.Marshal(Ingredient{})
	is.True(errors.Is(err, ErrInvalidArgument))

	both := Ingredient{item: "mymod:gem", ore: "gemRuby"}
	is.True(errors.Is(both.Validate(), ErrInvalidArgument))
	_, err = json.Marshal(both)
	is.True(errors.Is(err, ErrInvalidArgument))
}

func TestSlabRecipe(t *testing.T) {
	is := is.New(t)
	r, err := SlabRecipe("minecraft:dirt", "mymod:stone_slab")
	is.NoErr(err)
	want := map[string]any{
		"type":    "minecraft:crafting_shaped",
		"pattern": []any{"XXX", "   ", "   "},
		"key":     map[string]any{"X": map[string]any{"item": "minecraft:dirt"}},
		"result":  map[string]any{"item": "mymod:stone_slab", "count": float64(6)},
	}
	if diff := cmp.Diff(want, toMap(t, r)); diff != "" {
		t.Errorf("slab recipe (-want +got):\n%s", diff)
	}
}

func TestStairsRecipe(t *testing.T) {
	is := is.New(t)
	r, err := StairsRecipe("minecraft:stone", "mymod:stone_stairs")
	is.NoErr(err)
	m := toMap(t, r)
	is.Equal(m["pattern"], []any{"X  ", "XX ", "XXX"})
	is.Equal(m["result"], map[string]any{"item": "mymod:stone_stairs", "count": float64(6)})
}

func TestShapelessKeepsEveryIngredient(t *testing.T) {
	is := is.New(t)
	res, err := NewResult("mymod:mix", 1)
	is.NoErr(err)
	a, b, c := ItemIngredient("mymod:a"), ItemIngredientMeta("mymod:b", 2), OreIngredient("dustC")
	m := toMap(t, ShapelessRecipe{Ingredients: []Ingredient{a, b, c}, Result: res})
	is.Equal(m["type"], "minecraft:crafting_shapeless")
	is.Equal(m["ingredients"], []any{toMap(t, a), toMap(t, b), toMap(t, c)})
}

func TestShapelessIngredientCount(t *testing.T) {
	is := is.New(t)
	res, _ := NewResult("mymod:mix", 1)
	is.True(errors.Is(ShapelessRecipe{Result: res}.Validate(), ErrInvalidArgument))
	ten := make([]Ingredient, 10)
	for i := range ten {
		ten[i] = ItemIngredient("mymod:a")
	}
	is.True(errors.Is(ShapelessRecipe{Ingredients: ten, Result: res}.Validate(), ErrInvalidArgument))
}

func TestParsePattern(t *testing.T) {
	is := is.New(t)
	p, err := ParsePattern("XXX")
	is.NoErr(err)
	is.Equal(p, Pattern{"XXX", "   ", "   "})

	p, err = ParsePattern("X", "XX")
	is.NoErr(err)
	is.Equal(p, Pattern{"X  ", "XX ", "   "})

	p, err = ParsePattern("ÄÄÄ", "Ä")
	is.NoErr(err)
	is.Equal(p, Pattern{"ÄÄÄ", "Ä  ", "   "})

	_, err = ParsePattern()
	is.True(errors.Is(err, ErrInvalidArgument))
	_, err = ParsePattern("XXXX")
	is.True(errors.Is(err, ErrInvalidArgument))
	_, err = ParsePattern("X", "X", "X", "X")
	is.True(errors.Is(err, ErrInvalidArgument))
}

func TestShapedValidate(t *testing.T) {
	res, _ := NewResult("mymod:block", 1)
	tests := map[string]struct {
		r  ShapedRecipe
		ok bool
	}{
		"valid": {ShapedRecipe{
			Pattern: Pattern{"GGG", "G G", "GGG"},
			Key:     map[string]Ingredient{"G": ItemIngredient("mymod:gem")},
			Result:  res,
		}, true},
		"missing key": {ShapedRecipe{
			Pattern: Pattern{"GGG", "GSG", "GGG"},
			Key:     map[string]Ingredient{"G": ItemIngredient("mymod:gem")},
			Result:  res,
		}, false},
		"unused key": {ShapedRecipe{
			Pattern: Pattern{"GGG", "GGG", "GGG"},
			Key:     map[string]Ingredient{"G": ItemIngredient("mymod:gem"), "S": OreIngredient("stickWood")},
			Result:  res,
		}, false},
		"multibyte keys": {ShapedRecipe{
			Pattern: Pattern{"ÄÄÄ", "Ä Ä", "ÄÄÄ"},
			Key:     map[string]Ingredient{"Ä": ItemIngredient("mymod:gem")},
			Result:  res,
		}, true},
		"short multibyte row": {ShapedRecipe{
			Pattern: Pattern{"Ä ", "ÄÄÄ", "ÄÄÄ"},
			Key:     map[string]Ingredient{"Ä": ItemIngredient("mymod:gem")},
			Result:  res,
		}, false},
		"short row": {ShapedRecipe{
			Pattern: Pattern{"GG", "GGG", "GGG"},
			Key:     map[string]Ingredient{"G": ItemIngredient("mymod:gem")},
			Result:  res,
		}, false},
		"long key": {ShapedRecipe{
			Pattern: Pattern{"GGG", "GGG", "GGG"},
			Key:     map[string]Ingredient{"G": ItemIngredient("mymod:gem"), "GG": ItemIngredient("mymod:gem")},
			Result:  res,
		}, false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestRecipeFilePath(t *testing.T) {
	is := is.New(t)
	r, _ := StairsRecipe("minecraft:stone", "mymod:stone_stairs")
	f, err := RecipeFile("stone_stairs", r)
	is.NoErr(err)
	is.Equal(f.RelativePath, "recipes/stone_stairs.json")
}
