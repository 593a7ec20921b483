// Package mcdatagen generates the static asset descriptors a Forge 1.12 mod
// or resource pack ships: blockstates, block and item models, crafting
// recipes and lang files.
//
// Descriptors are plain values that serialize to the JSON the game loads.
// Asset functions such as [Stairs] or [Slab] turn them into Files at their
// conventional paths, and an [FS] collects Files to write, verify or zip in
// one batch. Jennies and [JennyList] compose generators over many inputs.
package mcdatagen

// A Jenny is a generator of files.
//
// Each Jenny works with exactly one type of input, indicated by its type
// parameter. mcdatagen follows a naming convention of naming these type
// parameters "Input" as an indicator for humans that a particular type
// parameter is used in this way.
//
// Each Jenny takes either one or many Inputs, and produces zero, one, or many
// output files. Go's generic system does not allow expression of the four
// kinds of Jennies as part of the Jenny interface itself, so every Jenny must
// also implement one of:
//
//	OneToOne[Input] | OneToMany[Input] | ManyToOne[Input] | ManyToMany[Input]
type Jenny[Input any] interface {
	// JennyName returns the name of the generator.
	JennyName() string
}

// NamedJenny is the part of a Jenny that does not depend on its Input type.
type NamedJenny interface {
	JennyName() string
}
