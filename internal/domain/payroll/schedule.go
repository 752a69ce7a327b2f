package payroll

import "math"

// Bracket taxes the slice of the taxable base between the previous
// bracket's ceiling and UpToTaxUnits (expressed in UITs).
type Bracket struct {
	UpToTaxUnits float64 `json:"upToTaxUnits"`
	Rate         float64 `json:"rate"`
}

// TaxSchedule is an ordered list of brackets. The last bracket must be
// unbounded.
type TaxSchedule []Bracket

// FiveBracketSchedule is the fifth-category income tax table.
var FiveBracketSchedule = TaxSchedule{
	{UpToTaxUnits: 5, Rate: 0.08},
	{UpToTaxUnits: 20, Rate: 0.14},
	{UpToTaxUnits: 35, Rate: 0.17},
	{UpToTaxUnits: 45, Rate: 0.20},
	{UpToTaxUnits: math.Inf(1), Rate: 0.30},
}

// AnnualTax applies the marginal schedule to an annual taxable base. A base
// sitting exactly on a ceiling is taxed entirely by the lower bracket.
func (s TaxSchedule) AnnualTax(taxableBase, taxUnit float64) float64 {
	if taxableBase <= 0 {
		return 0
	}
	tax := 0.0
	floor := 0.0
	for _, b := range s {
		ceiling := b.UpToTaxUnits * taxUnit
		if taxableBase <= ceiling {
			return tax + (taxableBase-floor)*b.Rate
		}
		tax += (ceiling - floor) * b.Rate
		floor = ceiling
	}
	return tax
}

// BracketFor returns the index of the bracket the base falls into, or -1
// for a base with no tax.
func (s TaxSchedule) BracketFor(taxableBase, taxUnit float64) int {
	if taxableBase <= 0 {
		return -1
	}
	for i, b := range s {
		if taxableBase <= b.UpToTaxUnits*taxUnit {
			return i
		}
	}
	return len(s) - 1
}

func (s TaxSchedule) Validate() error {
	if len(s) == 0 {
		return ErrInvalidSchedule
	}
	prev := 0.0
	for i, b := range s {
		if math.IsNaN(b.Rate) || b.Rate < 0 || b.Rate >= 1 {
			return ErrInvalidSchedule
		}
		if !(b.UpToTaxUnits > prev) {
			return ErrInvalidSchedule
		}
		if i == len(s)-1 && !math.IsInf(b.UpToTaxUnits, 1) {
			return ErrInvalidSchedule
		}
		prev = b.UpToTaxUnits
	}
	return nil
}
