package hash

// Hash abstracts one-way hashing of secrets such as passwords.
type Hash interface {
	// Hash hashes plaintext and returns the encoded hash.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the stored hash.
	Verify(hashed, plaintext string) bool
}
