// Package money renders sol amounts for documents and display fields.
// Engine figures stay float64; rounding happens only here.
package money

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const CurrencySymbol = "S/"

var printer = message.NewPrinter(language.English)

// Round2 rounds half away from zero to cents. NaN and infinities are
// returned unchanged.
func Round2(v float64) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Fixed2 is the plain two-decimal form used in CSV exports, e.g. "3000.00".
func Fixed2(v float64) string {
	if !finite(v) {
		return nonFinite(v)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Format is the grouped display form, e.g. "S/ 3,000.00".
func Format(v float64) string {
	if !finite(v) {
		return CurrencySymbol + " " + nonFinite(v)
	}
	return CurrencySymbol + " " + printer.Sprint(number.Decimal(Round2(v), number.Scale(2)))
}

// Percent renders a percentage with up to two decimals, e.g. "10.23%".
func Percent(v float64) string {
	if !finite(v) {
		return nonFinite(v) + "%"
	}
	return decimal.NewFromFloat(v).Round(2).String() + "%"
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonFinite(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
