package otp

import (
	"crypto/rand"
	"math/big"
)

const (
	// CodeMin is the smallest generated code (inclusive).
	CodeMin int64 = 100000
	// CodeMax is the largest generated code (inclusive).
	CodeMax int64 = 999999
)

// Generator produces one-time numeric codes.
type Generator interface {
	// Generate returns a new code in [CodeMin, CodeMax].
	Generate() (int64, error)
}

// Numeric implements Generator using crypto/rand.
//
// Every 6-digit code in the range is equally likely, so codes never need
// zero-padding when rendered as text.
type Numeric struct{}

// NewNumeric returns a Numeric code generator.
func NewNumeric() *Numeric {
	return &Numeric{}
}

// Generate returns a uniform random code in [CodeMin, CodeMax].
func (Numeric) Generate() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(CodeMax-CodeMin+1))
	if err != nil {
		return 0, err
	}

	return CodeMin + n.Int64(), nil
}
