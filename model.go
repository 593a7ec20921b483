package mcdatagen

import (
	"fmt"
)

const (
	// ItemGeneratedParent is the built-in parent for flat, layered item models.
	ItemGeneratedParent = "item/generated"
	// CubeAllParent is the default parent for block models.
	CubeAllParent = "block/cube_all"
)

// Model is a parent model reference plus the texture assigned to each of the
// parent's texture slots.
type Model struct {
	Parent   string            `json:"parent"`
	Textures map[string]string `json:"textures"`
}

func (m Model) Validate() error {
	if m.Parent == "" {
		return invalidf("model parent must not be empty")
	}
	return nil
}

func (m Model) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	type model Model
	doc := model(m)
	if doc.Textures == nil {
		doc.Textures = map[string]string{}
	}
	return marshal(doc)
}

// ItemModel assigns each texture to a layer slot, layer0 first, on the
// generated item parent.
func ItemModel(layers ...string) Model {
	tex := make(map[string]string, len(layers))
	for i, l := range layers {
		tex[fmt.Sprintf("layer%d", i)] = l
	}
	return Model{Parent: ItemGeneratedParent, Textures: tex}
}

// BlockModel builds a block model. A single texture is assigned to the "all"
// slot. An empty parent means [CubeAllParent].
func BlockModel(textures TextureSpec, parent string) Model {
	if parent == "" {
		parent = CubeAllParent
	}
	return Model{Parent: parent, Textures: resolveTextures(textures, "all")}
}

func modelPath(name string) string {
	return fmt.Sprintf("models/%s.json", name)
}
