package uid

// NumberID generates numeric identifiers (e.g. database primary keys).
type NumberID interface {
	// Generate returns a new numeric identifier.
	Generate() int64
}

// StringID generates string identifiers (e.g. correlation or token IDs).
type StringID interface {
	// Generate returns a new string identifier.
	Generate() string
}
