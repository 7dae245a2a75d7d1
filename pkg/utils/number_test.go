package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{2.5, 3},
		{12.5, 13},
		{7.56, 8},
		{-0.5, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundHalfUp(tt.in), "RoundHalfUp(%v)", tt.in)
	}
}

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode()
	assert.NoError(t, err)
	assert.Len(t, code, codeLength)
	for _, r := range code {
		assert.Contains(t, codeCharacters, string(r))
	}
}
