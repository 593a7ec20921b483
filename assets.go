package mcdatagen

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONFile encodes v as JSON indented by two spaces, with a trailing newline,
// into a File at the relative path p. Characters such as & < > are written
// as is.
func JSONFile(p string, v any) (*File, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return &File{RelativePath: p, Data: buf.Bytes()}, nil
}

// marshal is json.Marshal without HTML escaping. Every MarshalJSON in this
// package goes through it so nested values are escaped the same way.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// BlockstateFile writes b to blockstates/<name>.json.
func BlockstateFile(name string, b Blockstate) (*File, error) {
	return JSONFile(blockstatePath(name), b)
}

// CubeAll writes a single-texture cube blockstate.
func CubeAll(name, texture string) (*File, error) {
	return BlockstateFile(name, CubeAllBlockstate(texture))
}

// Stairs writes a stairs blockstate.
func Stairs(name string, textures TextureSpec) (*File, error) {
	return BlockstateFile(name, StairsBlockstate(textures))
}

// Slab writes the half slab blockstate to blockstates/slab/<name>.json and the
// double slab blockstate to blockstates/double_slab/<name>.json. Either both
// files are returned or neither is.
func Slab(name string, textures TextureSpec, fullBlockModel string) (Files, error) {
	slab, double, err := SlabBlockstates(textures, fullBlockModel)
	if err != nil {
		return nil, fmt.Errorf("slab %s: %w", name, err)
	}
	sf, err := BlockstateFile("slab/"+name, slab)
	if err != nil {
		return nil, err
	}
	df, err := BlockstateFile("double_slab/"+name, double)
	if err != nil {
		return nil, err
	}
	return Files{*sf, *df}, nil
}

// Door writes a door blockstate. textures may be nil.
func Door(name string, textures TextureSpec) (*File, error) {
	return BlockstateFile(name, DoorBlockstate(textures))
}

// Simple writes a blockstate whose only variant renders one of models.
func Simple(name string, models ...string) (*File, error) {
	b, err := SimpleBlockstate(models...)
	if err != nil {
		return nil, fmt.Errorf("blockstate %s: %w", name, err)
	}
	return BlockstateFile(name, b)
}

// ModelFile writes m to models/<name>.json.
func ModelFile(name string, m Model) (*File, error) {
	return JSONFile(modelPath(name), m)
}

// Item writes a layered item model to models/item/<name>.json.
func Item(name string, layers ...string) (*File, error) {
	return ModelFile("item/"+name, ItemModel(layers...))
}

// Block writes a block model to models/block/<name>.json. An empty parent
// means [CubeAllParent].
func Block(name string, textures TextureSpec, parent string) (*File, error) {
	return ModelFile("block/"+name, BlockModel(textures, parent))
}

// CubeAllModel writes a block model with one texture on all six faces.
func CubeAllModel(name, texture string) (*File, error) {
	return Block(name, SingleTexture(texture), CubeAllParent)
}

// RecipeFile writes a shaped or shapeless recipe to recipes/<name>.json.
func RecipeFile(name string, r json.Marshaler) (*File, error) {
	return JSONFile(recipePath(name), r)
}

// Shaped writes a shaped recipe.
func Shaped(name string, pattern Pattern, key map[string]Ingredient, result Result) (*File, error) {
	return RecipeFile(name, ShapedRecipe{Pattern: pattern, Key: key, Result: result})
}

// Shapeless writes a shapeless recipe.
func Shapeless(name string, ingredients []Ingredient, result Result) (*File, error) {
	return RecipeFile(name, ShapelessRecipe{Ingredients: ingredients, Result: result})
}
