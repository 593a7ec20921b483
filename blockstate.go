package mcdatagen

import (
	"fmt"
)

// Blockstate maps block state predicates to the variant used to render them.
//
// A Blockstate has two output dialects, selected by whether Textures is
// populated. With no textures (nil or empty) only the variant table is
// written and each model carries its own textures. With textures, the Forge
// extended format is written: a forge_marker field and a defaults block that
// applies the textures, and UV lock when UVLock is set, to every variant.
// UVLock has no effect without textures.
type Blockstate struct {
	Textures map[string]string
	Variants Variants
	UVLock   bool
}

type blockstateDefaults struct {
	Textures map[string]string `json:"textures"`
	UVLock   bool              `json:"uvlock,omitempty"`
}

type blockstateDocument struct {
	ForgeMarker int                 `json:"forge_marker,omitempty"`
	Defaults    *blockstateDefaults `json:"defaults,omitempty"`
	Variants    Variants            `json:"variants"`
}

// Validate reports whether the variant table is well formed.
func (b Blockstate) Validate() error {
	return b.Variants.validate()
}

func (b Blockstate) document() blockstateDocument {
	doc := blockstateDocument{Variants: b.Variants}
	if len(b.Textures) > 0 {
		doc.ForgeMarker = 1
		doc.Defaults = &blockstateDefaults{Textures: b.Textures, UVLock: b.UVLock}
	}
	return doc
}

func (b Blockstate) MarshalJSON() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return marshal(b.document())
}

// CubeAllBlockstate is a single "normal" variant using the cube_all model with
// one texture on every face.
func CubeAllBlockstate(texture string) Blockstate {
	return Blockstate{
		Textures: map[string]string{"all": texture},
		Variants: Variants{SV("normal", Variant{Model: "cube_all"})},
	}
}

// StairsBlockstate uses the canonical stair table with UV lock. A single
// texture is applied to the top, bottom and side slots.
func StairsBlockstate(textures TextureSpec) Blockstate {
	return Blockstate{
		Textures: resolveTextures(textures, "top", "bottom", "side"),
		Variants: StairVariants(),
		UVLock:   true,
	}
}

// SlabBlockstates returns the half-slab blockstate, using the canonical slab
// table, and the double-slab blockstate, whose single "normal" variant renders
// fullBlockModel. fullBlockModel is required.
func SlabBlockstates(textures TextureSpec, fullBlockModel string) (slab, double Blockstate, err error) {
	if fullBlockModel == "" {
		return slab, double, invalidf("slab requires a full block model for the double slab")
	}
	tex := resolveTextures(textures, "top", "bottom", "side")
	slab = Blockstate{
		Textures: tex,
		Variants: SlabVariants(),
	}
	double = Blockstate{
		Variants: Variants{SV("normal", Variant{Model: fullBlockModel})},
	}
	for _, slot := range []string{"all", "top", "side"} {
		if t, ok := tex[slot]; ok {
			double.Textures = map[string]string{"all": t}
			break
		}
	}
	return slab, double, nil
}

// DoorBlockstate uses the canonical door table. textures may be nil when the
// door models carry their own textures; a single texture is applied to the
// bottom and top slots.
func DoorBlockstate(textures TextureSpec) Blockstate {
	return Blockstate{
		Textures: resolveTextures(textures, "bottom", "top"),
		Variants: DoorVariants(),
	}
}

// SimpleBlockstate has only the "normal" variant. With several models the
// game picks one at random per placed block.
func SimpleBlockstate(models ...string) (Blockstate, error) {
	if len(models) == 0 {
		return Blockstate{}, invalidf("simple blockstate requires at least one model")
	}
	sv := StateVariant{State: "normal"}
	for _, m := range models {
		sv.Choices = append(sv.Choices, Variant{Model: m})
	}
	return Blockstate{Variants: Variants{sv}}, nil
}

func blockstatePath(name string) string {
	return fmt.Sprintf("blockstates/%s.json", name)
}
