package payroll

// Benefit calculators use the proportional labour-law formulas. Each returns
// false when an input is missing, non-positive or above MaxAmount.

// ComputeCTS falls back to the salary when no average bonus is given.
func ComputeCTS(salary, monthsWorked, averageBonus float64) (CTSResult, bool) {
	if !isComputableAmount(salary) || !isPositiveAmount(monthsWorked) || averageBonus > MaxAmount {
		return CTSResult{}, false
	}
	if !isPositiveAmount(averageBonus) {
		averageBonus = salary
	}
	proportional := averageBonus / CTSBonusFraction
	computable := salary + proportional
	return CTSResult{
		Salary:            salary,
		MonthsWorked:      monthsWorked,
		ProportionalBonus: proportional,
		ComputablePay:     computable,
		CTS:               computable * monthsWorked / MonthsPerYear,
	}, true
}

// ComputeBonuses computes the July (Fiestas Patrias) and December (Navidad)
// gratificaciones from the months worked in each semester.
func ComputeBonuses(salary, monthsJuly, monthsDecember float64) (BonusResult, bool) {
	if !isComputableAmount(salary) {
		return BonusResult{}, false
	}
	july := salary * monthsJuly / BonusPeriodMonths
	december := salary * monthsDecember / BonusPeriodMonths
	return BonusResult{
		Salary:        salary,
		MonthsWorked:  monthsJuly + monthsDecember,
		JulyBonus:     july,
		DecemberBonus: december,
		Total:         july + december,
	}, true
}

// ComputeProfitSharing estimates a single worker's share of the company
// profit pool, assuming they are the only participant.
func ComputeProfitSharing(salary, monthsWorked, annualProfit, percent float64) (ProfitSharingResult, bool) {
	if !isComputableAmount(salary) || !isPositiveAmount(monthsWorked) ||
		!isComputableAmount(annualProfit) || !isPositiveAmount(percent) {
		return ProfitSharingResult{}, false
	}
	pool := annualProfit * percent / 100
	share := pool * monthsWorked * salary / (MonthsPerYear * salary)
	return ProfitSharingResult{
		Salary:       salary,
		MonthsWorked: monthsWorked,
		AnnualProfit: annualProfit,
		Percent:      percent,
		Share:        share,
	}, true
}

func ComputeVacation(salary, monthsWorked float64) (VacationResult, bool) {
	if !isComputableAmount(salary) || !isPositiveAmount(monthsWorked) {
		return VacationResult{}, false
	}
	days := VacationDaysPerYear / MonthsPerYear * monthsWorked
	amount := salary / DaysPerPayMonth * days
	truncated := 0.0
	if monthsWorked < MonthsPerYear {
		truncated = amount
	}
	return VacationResult{
		Salary:          salary,
		MonthsWorked:    monthsWorked,
		Days:            days,
		Amount:          amount,
		TruncatedAmount: truncated,
	}, true
}

// Summarize fills every tab for one base salary using each tab's default
// inputs. Profit sharing is only included when annualProfit is positive.
func (c Calculator) Summarize(salary float64, scheme PensionScheme, annualProfit float64) Summary {
	out := Summary{NetSalary: c.ComputeNetSalary(salary, scheme)}
	if cts, ok := ComputeCTS(salary, DefaultCTSMonths, 0); ok {
		out.CTS = &cts
	}
	if bonuses, ok := ComputeBonuses(salary, DefaultBonusMonthsPerPeriod, DefaultBonusMonthsPerPeriod); ok {
		out.Bonuses = &bonuses
	}
	if share, ok := ComputeProfitSharing(salary, MonthsPerYear, annualProfit, DefaultProfitSharingPercent); ok {
		out.ProfitSharing = &share
	}
	if vacation, ok := ComputeVacation(salary, DefaultVacationMonths); ok {
		out.Vacation = &vacation
	}
	return out
}
