package mcdatagen

// TextureSpec is either a single texture applied to every face slot a builder
// needs ([SingleTexture]) or an explicit slot mapping ([FaceTextures]).
// Builders resolve it once, before any serialization happens.
type TextureSpec interface {
	// Resolve returns the canonical slot mapping. faces lists the slots a
	// single texture is broadcast to; an explicit mapping ignores it.
	Resolve(faces ...string) map[string]string
}

// SingleTexture is one texture path broadcast to every face slot.
type SingleTexture string

func (t SingleTexture) Resolve(faces ...string) map[string]string {
	m := make(map[string]string, len(faces))
	for _, f := range faces {
		m[f] = string(t)
	}
	return m
}

// FaceTextures maps texture slots to texture paths.
type FaceTextures map[string]string

func (t FaceTextures) Resolve(...string) map[string]string {
	if t == nil {
		return nil
	}
	m := make(map[string]string, len(t))
	for k, v := range t {
		m[k] = v
	}
	return m
}

func resolveTextures(spec TextureSpec, faces ...string) map[string]string {
	if spec == nil {
		return nil
	}
	return spec.Resolve(faces...)
}
