package mcdatagen

// OneToOne is a Jenny that accepts one input and produces one File.
type OneToOne[Input any] interface {
	Jenny[Input]

	// Generate takes an Input and generates one [File], or none (nil) if the j
	// was a no-op for the provided Input.
	Generate(Input) (*File, error)
}
