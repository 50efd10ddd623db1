package otp

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericGenerateRange(t *testing.T) {
	gen := NewNumeric()

	for range 1000 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.GreaterOrEqual(t, code, CodeMin)
		require.LessOrEqual(t, code, CodeMax)
	}
}

func TestNumericGenerateSixDigits(t *testing.T) {
	gen := NewNumeric()

	code, err := gen.Generate()
	require.NoError(t, err)
	require.Len(t, strconv.FormatInt(code, 10), 6)
}
