package mcdatagen

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"
)

func toMap(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %T: %v", v, err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal %s: %v", b, err)
	}
	return m
}

func TestVariantOmitsZeroAxes(t *testing.T) {
	tests := []struct {
		v    Variant
		want map[string]any
	}{
		{Variant{Model: "stairs"}, map[string]any{"model": "stairs"}},
		{V("stairs", 0, 90), map[string]any{"model": "stairs", "y": float64(90)}},
		{V("stairs", 180, 270), map[string]any{"model": "stairs", "x": float64(180), "y": float64(270)}},
		{Variant{Model: "m", Z: 90}, map[string]any{"model": "m", "z": float64(90)}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, toMap(t, tt.v)); diff != "" {
			t.Errorf("%+v (-want +got):\n%s", tt.v, diff)
		}
	}
}

func TestVariantsKeepOrder(t *testing.T) {
	is := is.New(t)
	vs := Variants{
		SV("zeta", V("a", 0, 0)),
		SV("alpha", V("b", 0, 90)),
		{State: "mid", Choices: []Variant{V("c", 0, 0), V("d", 0, 0)}},
	}
	b, err := json.Marshal(vs)
	is.NoErr(err)
	is.Equal(string(b), `{"zeta":{"model":"a"},"alpha":{"model":"b","y":90},"mid":[{"model":"c"},{"model":"d"}]}`)
}

func TestVariantsValidate(t *testing.T) {
	is := is.New(t)
	is.True(Variants{}.validate() != nil)
	is.True(Variants{SV("a", V("m", 0, 0)), SV("a", V("m", 0, 0))}.validate() != nil)
	is.True(Variants{SV("", V("m", 0, 0))}.validate() != nil)
	is.True(Variants{SV("a", V("", 0, 0))}.validate() != nil)
	is.True(Variants{{State: "a"}}.validate() != nil)
	is.NoErr(Variants{SV("a", V("m", 0, 0))}.validate())
}

func TestStateKey(t *testing.T) {
	is := is.New(t)
	is.Equal(StateKey(nil), "normal")
	is.Equal(StateKey(map[string]string{"shape": "straight", "facing": "north", "half": "bottom"}),
		"facing=north,half=bottom,shape=straight")
}

func TestStairTableRoundTrip(t *testing.T) {
	for _, sv := range StairVariants() {
		is := is.New(t)
		is.Equal(len(sv.Choices), 1)
		b, err := json.Marshal(sv.Choices[0])
		is.NoErr(err)
		var got Variant
		is.NoErr(json.Unmarshal(b, &got))
		is.Equal(got, sv.Choices[0])
	}
}

func TestCanonicalTables(t *testing.T) {
	is := is.New(t)
	is.Equal(len(StairVariants()), 41)
	is.Equal(len(SlabVariants()), 3)
	is.Equal(len(DoorVariants()), 32)

	for _, vs := range []Variants{StairVariants(), SlabVariants(), DoorVariants()} {
		is.NoErr(vs.validate())
	}

	sv, ok := StairVariants().Lookup(StateKey(map[string]string{"facing": "north", "half": "top", "shape": "straight"}))
	is.True(ok)
	is.Equal(sv.Choices[0], V("stairs", 180, 270))

	// every facing, half and shape combination is present
	for _, f := range []string{"north", "east", "south", "west"} {
		for _, h := range []string{"bottom", "top"} {
			for _, s := range []string{"straight", "inner_left", "inner_right", "outer_left", "outer_right"} {
				_, ok := StairVariants().Lookup(StateKey(map[string]string{"facing": f, "half": h, "shape": s}))
				is.True(ok)
			}
		}
	}
}

func TestTablesAreCopies(t *testing.T) {
	is := is.New(t)
	vs := StairVariants()
	vs[0].Choices[0].Model = "changed"
	is.Equal(StairVariants()[0].Choices[0].Model, "stairs")
}
