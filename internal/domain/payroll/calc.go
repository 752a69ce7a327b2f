package payroll

import "math"

// Calculator is the stateless net salary engine. The zero value is not
// usable; start from DefaultCalculator.
type Calculator struct {
	Constants TaxConstants
	Schedule  TaxSchedule
}

func DefaultCalculator() Calculator {
	return Calculator{Constants: DefaultTaxConstants(), Schedule: FiveBracketSchedule}
}

func (c Calculator) Validate() error {
	tu := c.Constants.TaxUnit
	if math.IsNaN(tu) || math.IsInf(tu, 0) || tu <= 0 {
		return ErrInvalidTaxUnit
	}
	return c.Schedule.Validate()
}

// ComputeNetSalary runs the default calculator.
func ComputeNetSalary(grossMonthlySalary float64, scheme PensionScheme) NetSalaryResult {
	return DefaultCalculator().ComputeNetSalary(grossMonthlySalary, scheme)
}

// ComputeNetSalary never fails. Gross pay outside (0, MaxAmount] comes back
// untouched with zero deductions, which callers read as "nothing to compute
// yet".
func (c Calculator) ComputeNetSalary(grossMonthlySalary float64, scheme PensionScheme) NetSalaryResult {
	if !isComputableAmount(grossMonthlySalary) {
		return NetSalaryResult{GrossSalary: grossMonthlySalary, NetSalary: grossMonthlySalary}
	}

	pension := 0.0
	if scheme != nil {
		pension = grossMonthlySalary * scheme.Rate()
	}
	tax := c.MonthlyIncomeTax(grossMonthlySalary)

	return NetSalaryResult{
		GrossSalary:      grossMonthlySalary,
		PensionDeduction: pension,
		IncomeTax:        tax,
		NetSalary:        grossMonthlySalary - pension - tax,
	}
}

// AnnualGross counts twelve salaries plus the July and December bonuses,
// each loaded by BonusLoadFactor.
func (c Calculator) AnnualGross(grossMonthlySalary float64) float64 {
	return grossMonthlySalary*MonthsPerYear + BonusPaymentsPerYear*(grossMonthlySalary*BonusLoadFactor)
}

func (c Calculator) TaxableBase(grossMonthlySalary float64) float64 {
	annual := c.AnnualGross(grossMonthlySalary)
	threshold := c.Constants.AnnualExemptThreshold()
	if annual <= threshold {
		return 0
	}
	return annual - threshold
}

func (c Calculator) MonthlyIncomeTax(grossMonthlySalary float64) float64 {
	if !isComputableAmount(grossMonthlySalary) {
		return 0
	}
	base := c.TaxableBase(grossMonthlySalary)
	if base == 0 {
		return 0
	}
	return c.Schedule.AnnualTax(base, c.Constants.TaxUnit) / MonthsPerYear
}

func isPositiveAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func isComputableAmount(v float64) bool {
	return isPositiveAmount(v) && v <= MaxAmount
}
