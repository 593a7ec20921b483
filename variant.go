package mcdatagen

import (
	"sort"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Variant is a model reference plus an optional rotation, used as the value
// side of a blockstate variant table. Rotation values are expected to be one
// of 0, 90, 180 or 270 and are not checked.
//
// Zero rotations are omitted from the JSON form.
type Variant struct {
	Model string `json:"model"`
	X     int    `json:"x,omitempty"`
	Y     int    `json:"y,omitempty"`
	Z     int    `json:"z,omitempty"`
}

// V is shorthand for a Variant with rotation around x and y, which is all the
// canonical tables need.
func V(model string, x, y int) Variant {
	return Variant{Model: model, X: x, Y: y}
}

// StateVariant is one entry of a blockstate variant table: a state predicate
// string and the model choices for it. A single choice is written as an
// object, several are written as an array the game picks from at random.
type StateVariant struct {
	State   string
	Choices []Variant
}

// SV returns a StateVariant with a single choice.
func SV(state string, v Variant) StateVariant {
	return StateVariant{State: state, Choices: []Variant{v}}
}

// Variants is an ordered variant table. Its JSON form is an object whose keys
// appear in slice order.
type Variants []StateVariant

// Copy returns a copy of the table that shares no slices with vs.
func (vs Variants) Copy() Variants {
	if vs == nil {
		return nil
	}
	out := make(Variants, len(vs))
	for i, sv := range vs {
		out[i] = StateVariant{State: sv.State, Choices: append([]Variant(nil), sv.Choices...)}
	}
	return out
}

// Lookup returns the StateVariant for state, if present.
func (vs Variants) Lookup(state string) (StateVariant, bool) {
	for _, sv := range vs {
		if sv.State == state {
			return sv, true
		}
	}
	return StateVariant{}, false
}

func (vs Variants) validate() error {
	if len(vs) == 0 {
		return invalidf("blockstate must have at least one variant")
	}
	seen := make(map[string]bool, len(vs))
	for _, sv := range vs {
		if sv.State == "" {
			return invalidf("variant state key must not be empty")
		}
		if seen[sv.State] {
			return invalidf("duplicate variant state key %q", sv.State)
		}
		seen[sv.State] = true
		if len(sv.Choices) == 0 {
			return invalidf("variant %q has no model", sv.State)
		}
		for _, c := range sv.Choices {
			if c.Model == "" {
				return invalidf("variant %q references an empty model", sv.State)
			}
		}
	}
	return nil
}

func (vs Variants) MarshalJSON() ([]byte, error) {
	o := orderedmap.New()
	o.SetEscapeHTML(false)
	for _, sv := range vs {
		if len(sv.Choices) == 1 {
			o.Set(sv.State, sv.Choices[0])
		} else {
			o.Set(sv.State, sv.Choices)
		}
	}
	return o.MarshalJSON()
}

// StateKey encodes block properties as the canonical predicate string used for
// variant keys, "k1=v1,k2=v2" with keys in sorted order. An empty property set
// yields "normal".
func StateKey(props map[string]string) string {
	if len(props) == 0 {
		return "normal"
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+props[k])
	}
	return strings.Join(parts, ",")
}
