package payroll

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var colombia = language.MustParse("es-CO")

// FormatCurrency renders an amount as whole Colombian pesos, e.g. "$ 1.423.500".
func FormatCurrency(amount float64) string {
	p := message.NewPrinter(colombia)
	pesos := decimal.NewFromFloat(amount).Round(0).IntPart()
	if pesos < 0 {
		return "-$ " + p.Sprintf("%d", -pesos)
	}
	return "$ " + p.Sprintf("%d", pesos)
}

// FormatHours renders hours with two decimals.
func FormatHours(hours float64) string {
	return decimal.NewFromFloat(hours).StringFixed(2)
}
