// Package currency formata valores monetários no padrão brasileiro
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// símbolo seguido de espaço não separável, como no Intl pt-BR
const brlPrefix = "R$\u00a0"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata um valor em reais sem casas decimais: 1234567 -> "R$ 1.234.567"
func FormatBRL(value float64) string {
	rounded := int64(math.Round(value))
	if rounded < 0 {
		return "-" + brlPrefix + printer.Sprintf("%d", -rounded)
	}
	return brlPrefix + printer.Sprintf("%d", rounded)
}

// FormatNumber aplica o agrupamento de milhar pt-BR a um inteiro
func FormatNumber(value int64) string {
	return printer.Sprintf("%d", value)
}
