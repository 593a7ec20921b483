package mcdatagen

// ManyToOne is a Jenny that accepts many inputs and produces one File.
type ManyToOne[Input any] interface {
	Jenny[Input]

	// Generate takes a slice of Input and generates one File. A nil File may
	// be returned to indicate the jenny was a no-op for the provided Inputs.
	Generate(...Input) (*File, error)
}
