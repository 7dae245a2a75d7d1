package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0, "R$\u00a00"},
		{"sem agrupamento", 950, "R$\u00a0950"},
		{"milhares", 1234567, "R$\u00a01.234.567"},
		{"arredonda centavos", 999.6, "R$\u00a01.000"},
		{"negativo", -1500, "-R$\u00a01.500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(tt.value))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "6.522.727", FormatNumber(6522727))
}
