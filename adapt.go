package mcdatagen

// The adapters here let a jenny written for one input type run in a
// JennyList of another. Each list input is mapped to the jenny's own input;
// inputs the mapping rejects are skipped.

type adaptFunc[Adapted, Original any] func(Adapted) (Original, bool)

func always[Adapted, Original any](fn func(Adapted) Original) adaptFunc[Adapted, Original] {
	return func(in Adapted) (Original, bool) { return fn(in), true }
}

type o2oAdapt[Adapted, Original any] struct {
	j  OneToOne[Original]
	fn adaptFunc[Adapted, Original]
}

func (a o2oAdapt[Adapted, Original]) JennyName() string { return a.j.JennyName() }

func (a o2oAdapt[Adapted, Original]) Generate(in Adapted) (*File, error) {
	orig, ok := a.fn(in)
	if !ok {
		return nil, nil
	}
	return a.j.Generate(orig)
}

// AdaptOneToOne runs j, which takes Original inputs, over Adapted inputs by
// converting each with fn. Use it to reuse a jenny such as a recipe jenny
// inside a list of blocks.
func AdaptOneToOne[Adapted, Original any](j OneToOne[Original], fn func(Adapted) Original) OneToOne[Adapted] {
	return o2oAdapt[Adapted, Original]{j: j, fn: always(fn)}
}

// FilterOneToOne runs j only for the inputs keep accepts. For the rest it
// is a no-op.
func FilterOneToOne[Input any](j OneToOne[Input], keep func(Input) bool) OneToOne[Input] {
	return o2oAdapt[Input, Input]{j: j, fn: func(in Input) (Input, bool) { return in, keep(in) }}
}

type o2mAdapt[Adapted, Original any] struct {
	j  OneToMany[Original]
	fn adaptFunc[Adapted, Original]
}

func (a o2mAdapt[Adapted, Original]) JennyName() string { return a.j.JennyName() }

func (a o2mAdapt[Adapted, Original]) Generate(in Adapted) (Files, error) {
	orig, ok := a.fn(in)
	if !ok {
		return nil, nil
	}
	return a.j.Generate(orig)
}

// AdaptOneToMany is [AdaptOneToOne] for OneToMany jennies.
func AdaptOneToMany[Adapted, Original any](j OneToMany[Original], fn func(Adapted) Original) OneToMany[Adapted] {
	return o2mAdapt[Adapted, Original]{j: j, fn: always(fn)}
}

type m2oAdapt[Adapted, Original any] struct {
	j  ManyToOne[Original]
	fn adaptFunc[Adapted, Original]
}

func (a m2oAdapt[Adapted, Original]) JennyName() string { return a.j.JennyName() }

func (a m2oAdapt[Adapted, Original]) Generate(ins ...Adapted) (*File, error) {
	origs := make([]Original, 0, len(ins))
	for _, in := range ins {
		if orig, ok := a.fn(in); ok {
			origs = append(origs, orig)
		}
	}
	return a.j.Generate(origs...)
}

// AdaptManyToOne is [AdaptOneToOne] for ManyToOne jennies: fn converts every
// input, for example manifest entries into lang lines.
func AdaptManyToOne[Adapted, Original any](j ManyToOne[Original], fn func(Adapted) Original) ManyToOne[Adapted] {
	return m2oAdapt[Adapted, Original]{j: j, fn: always(fn)}
}
