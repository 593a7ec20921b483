package mcdatagen

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schemas returns JSON Schema documents describing the files this package
// writes, under schemas/<kind>.schema.json. Editors and CI linters can use
// them to check hand-edited or generated assets.
func Schemas() (Files, error) {
	docs := []struct {
		name  string
		title string
		v     any
	}{
		{"blockstate", "Forge blockstate", &blockstateDocument{}},
		{"model", "Block or item model", &Model{}},
		{"shaped_recipe", "Shaped crafting recipe", &shapedDocument{}},
		{"shapeless_recipe", "Shapeless crafting recipe", &shapelessDocument{}},
	}

	var fl Files
	for _, d := range docs {
		s := newReflector().Reflect(d.v)
		s.Title = d.title
		f, err := JSONFile("schemas/"+d.name+".schema.json", s)
		if err != nil {
			return nil, err
		}
		fl = append(fl, *f)
	}
	return fl, nil
}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		Mapper:         schemaMapper,
	}
}

// schemaMapper describes the types whose JSON form is produced by a custom
// MarshalJSON rather than their fields.
func schemaMapper(t reflect.Type) *jsonschema.Schema {
	switch t {
	case reflect.TypeOf(Variants{}):
		variant := reflectPlain(&Variant{})
		return &jsonschema.Schema{
			Type: "object",
			AdditionalProperties: &jsonschema.Schema{
				AnyOf: []*jsonschema.Schema{
					variant,
					{Type: "array", Items: variant},
				},
			},
		}
	case reflect.TypeOf(Ingredient{}):
		return &jsonschema.Schema{
			AnyOf: []*jsonschema.Schema{
				reflectPlain(&itemIngredientDocument{}),
				reflectPlain(&oreIngredientDocument{}),
			},
		}
	case reflect.TypeOf(Result{}):
		return reflectPlain(&resultDocument{})
	}
	return nil
}

func reflectPlain(v any) *jsonschema.Schema {
	s := (&jsonschema.Reflector{Anonymous: true, DoNotReference: true}).Reflect(v)
	s.Version = ""
	return s
}
