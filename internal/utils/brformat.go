package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ptBR renders integers with the Brazilian thousands separator.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRQuantity renders an integer quantity with pt-BR thousands
// separators, e.g. 12345 -> "12.345".
func FormatBRQuantity(n int64) string {
	return ptBR.Sprintf("%d", n)
}

// FormatBRNumber renders a decimal amount with 2 fraction digits using the
// pt-BR separators, e.g. 1234.5 -> "1.234,56". The decimal is formatted from
// its exact string form; no float round trip.
func FormatBRNumber(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2) // e.g. "-1234.50"
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := grouped.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatBRCurrency renders a decimal amount as a BRL currency string,
// e.g. 1234.5 -> "R$ 1.234,56".
func FormatBRCurrency(amount decimal.Decimal) string {
	return "R$ " + FormatBRNumber(amount)
}

// FormatBRDate converts a stored YYYY-MM-DD date to the DD/MM/YYYY display
// form. Malformed input is returned unchanged.
func FormatBRDate(isoDate string) string {
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return isoDate
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// FormatBRMonth converts a YYYY-MM key to the MM/YYYY display form.
func FormatBRMonth(isoMonth string) string {
	parts := strings.Split(isoMonth, "-")
	if len(parts) != 2 {
		return isoMonth
	}
	return parts[1] + "/" + parts[0]
}
