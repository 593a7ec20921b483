package mcdatagen

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

const (
	ShapedType    = "minecraft:crafting_shaped"
	ShapelessType = "minecraft:crafting_shapeless"
	OreDictType   = "forge:ore_dict"
)

// Ingredient is a single recipe slot: either a concrete item, optionally with
// a metadata value, or an ore dictionary entry matching any item registered
// under that name. Build one with [ItemIngredient], [ItemIngredientMeta] or
// [OreIngredient]; the zero value is invalid.
type Ingredient struct {
	item    string
	meta    int
	hasMeta bool
	ore     string
}

// ItemIngredient matches the item with the given registry name.
func ItemIngredient(itemID string) Ingredient {
	return Ingredient{item: itemID}
}

// ItemIngredientMeta matches one metadata value of an item. The data field is
// always written, including for meta 0.
func ItemIngredientMeta(itemID string, meta int) Ingredient {
	return Ingredient{item: itemID, meta: meta, hasMeta: true}
}

// OreIngredient matches every item registered under an ore dictionary key.
func OreIngredient(name string) Ingredient {
	return Ingredient{ore: name}
}

func (in Ingredient) IsOre() bool { return in.ore != "" }

func (in Ingredient) String() string {
	switch {
	case in.ore != "":
		return "ore:" + in.ore
	case in.hasMeta:
		return fmt.Sprintf("%s@%d", in.item, in.meta)
	}
	return in.item
}

func (in Ingredient) Validate() error {
	switch {
	case in.item == "" && in.ore == "":
		return invalidf("ingredient has neither an item nor an ore name")
	case in.item != "" && in.ore != "":
		return invalidf("ingredient %q cannot be both an item and ore %q", in.item, in.ore)
	}
	return nil
}

type itemIngredientDocument struct {
	Item string `json:"item"`
	Data *int   `json:"data,omitempty"`
}

type oreIngredientDocument struct {
	Type string `json:"type"`
	Ore  string `json:"ore"`
}

func (in Ingredient) MarshalJSON() ([]byte, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.ore != "" {
		return marshal(oreIngredientDocument{Type: OreDictType, Ore: in.ore})
	}
	doc := itemIngredientDocument{Item: in.item}
	if in.hasMeta {
		meta := in.meta
		doc.Data = &meta
	}
	return marshal(doc)
}

// Result is the output stack of a recipe.
type Result struct {
	itemID  string
	count   int
	meta    int
	hasMeta bool
}

// ResultOption configures a [Result].
type ResultOption func(*Result)

// WithMeta sets the metadata of the result. It is written even when 0, which
// items with subtypes need to select their first subtype.
func WithMeta(meta int) ResultOption {
	return func(r *Result) {
		r.meta = meta
		r.hasMeta = true
	}
}

// NewResult returns a result of count items. count must be at least 1.
func NewResult(itemID string, count int, opts ...ResultOption) (Result, error) {
	if itemID == "" {
		return Result{}, invalidf("result item must not be empty")
	}
	if count < 1 {
		return Result{}, invalidf("result count can't be less than 1, got %d", count)
	}
	r := Result{itemID: itemID, count: count}
	for _, opt := range opts {
		opt(&r)
	}
	return r, nil
}

func (r Result) ItemID() string { return r.itemID }
func (r Result) Count() int     { return r.count }

type resultDocument struct {
	Item  string `json:"item"`
	Count int    `json:"count,omitempty"`
	Data  *int   `json:"data,omitempty"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	if r.itemID == "" || r.count < 1 {
		return nil, invalidf("result must be built with NewResult")
	}
	doc := resultDocument{Item: r.itemID}
	if r.count > 1 {
		doc.Count = r.count
	}
	if r.hasMeta {
		meta := r.meta
		doc.Data = &meta
	}
	return marshal(doc)
}

// Pattern is a 3x3 crafting grid, one string per row. Each character is an
// ingredient key, or a space for an empty slot.
type Pattern [3]string

// ParsePattern pads one to three rows of at most three characters to a full
// 3x3 pattern, filling with spaces.
func ParsePattern(rows ...string) (Pattern, error) {
	var p Pattern
	if len(rows) == 0 || len(rows) > 3 {
		return p, invalidf("pattern must have 1 to 3 rows, got %d", len(rows))
	}
	for i := range p {
		row := ""
		if i < len(rows) {
			row = rows[i]
		}
		n := utf8.RuneCountInString(row)
		if n > 3 {
			return p, invalidf("pattern row %q is wider than 3 slots", row)
		}
		p[i] = row + strings.Repeat(" ", 3-n)
	}
	return p, nil
}

func (p Pattern) String() string {
	return strings.Join(p[:], "|")
}

// ShapedRecipe places ingredients in a fixed arrangement on the crafting grid.
type ShapedRecipe struct {
	Pattern Pattern
	Key     map[string]Ingredient
	Result  Result
}

// Validate checks that the pattern is a full 3x3 grid and that pattern
// characters and ingredient keys match one to one.
func (r ShapedRecipe) Validate() error {
	var result *multierror.Error
	used := map[string]bool{}
	for _, row := range r.Pattern {
		if utf8.RuneCountInString(row) != 3 {
			result = multierror.Append(result, invalidf("pattern row %q must be exactly 3 slots", row))
		}
		for _, c := range row {
			if c == ' ' {
				continue
			}
			k := string(c)
			if _, ok := r.Key[k]; !ok && !used[k] {
				result = multierror.Append(result, invalidf("pattern character %q has no ingredient", k))
			}
			used[k] = true
		}
	}

	keys := make([]string, 0, len(r.Key))
	for k := range r.Key {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if utf8.RuneCountInString(k) != 1 || k == " " {
			result = multierror.Append(result, invalidf("ingredient key %q must be a single non-space character", k))
		} else if !used[k] {
			result = multierror.Append(result, invalidf("ingredient key %q is not used by the pattern", k))
		}
		if err := r.Key[k].Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("key %q: %w", k, err))
		}
	}
	return result.ErrorOrNil()
}

type shapedDocument struct {
	Type    string                `json:"type"`
	Pattern Pattern               `json:"pattern"`
	Key     map[string]Ingredient `json:"key"`
	Result  Result                `json:"result"`
}

func (r ShapedRecipe) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return marshal(shapedDocument{
		Type:    ShapedType,
		Pattern: r.Pattern,
		Key:     r.Key,
		Result:  r.Result,
	})
}

// ShapelessRecipe accepts its ingredients anywhere on the crafting grid.
type ShapelessRecipe struct {
	Ingredients []Ingredient
	Result      Result
}

func (r ShapelessRecipe) Validate() error {
	if len(r.Ingredients) == 0 || len(r.Ingredients) > 9 {
		return invalidf("shapeless recipe must have 1 to 9 ingredients, got %d", len(r.Ingredients))
	}
	var result *multierror.Error
	for i, in := range r.Ingredients {
		if err := in.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("ingredient %d: %w", i, err))
		}
	}
	return result.ErrorOrNil()
}

type shapelessDocument struct {
	Type        string       `json:"type"`
	Ingredients []Ingredient `json:"ingredients"`
	Result      Result       `json:"result"`
}

func (r ShapelessRecipe) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return marshal(shapelessDocument{
		Type:        ShapelessType,
		Ingredients: append([]Ingredient(nil), r.Ingredients...),
		Result:      r.Result,
	})
}

// SlabRecipe crafts six slabs from a row of three parent blocks. Slab items
// with subtypes can pass WithMeta to select the half slab.
func SlabRecipe(parentItem, slabItem string, opts ...ResultOption) (ShapedRecipe, error) {
	res, err := NewResult(slabItem, 6, opts...)
	if err != nil {
		return ShapedRecipe{}, err
	}
	p, _ := ParsePattern("XXX")
	return ShapedRecipe{
		Pattern: p,
		Key:     map[string]Ingredient{"X": ItemIngredient(parentItem)},
		Result:  res,
	}, nil
}

// StairsRecipe crafts six stairs from six parent blocks in a staircase.
func StairsRecipe(parentItem, stairsItem string) (ShapedRecipe, error) {
	res, err := NewResult(stairsItem, 6)
	if err != nil {
		return ShapedRecipe{}, err
	}
	return ShapedRecipe{
		Pattern: Pattern{"X  ", "XX ", "XXX"},
		Key:     map[string]Ingredient{"X": ItemIngredient(parentItem)},
		Result:  res,
	}, nil
}

func recipePath(name string) string {
	return fmt.Sprintf("recipes/%s.json", name)
}
