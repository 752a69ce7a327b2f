package payroll

import (
	"fmt"
	"math"
	"strings"
)

// ParsePensionScheme maps a form value ("afp" or "onp") to a scheme. The
// rate is ignored for the public scheme.
func ParsePensionScheme(kind string, ratePercent float64) (PensionScheme, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case SchemeKindPrivate:
		return PrivateScheme{RatePercent: ratePercent}, nil
	case SchemeKindPublic:
		return PublicScheme{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPensionScheme, kind)
	}
}

func ValidateScheme(scheme PensionScheme) error {
	switch s := scheme.(type) {
	case PrivateScheme:
		if math.IsNaN(s.RatePercent) || s.RatePercent < 0 || s.RatePercent > 100 {
			return ErrInvalidPensionRate
		}
		return nil
	case PublicScheme:
		return nil
	default:
		return ErrUnknownPensionScheme
	}
}

// ComputeNetSalaryStrict is the batch entry point: it rejects input the
// lenient engine would pass through.
func (c Calculator) ComputeNetSalaryStrict(grossMonthlySalary float64, scheme PensionScheme) (NetSalaryResult, error) {
	if !isComputableAmount(grossMonthlySalary) {
		return NetSalaryResult{}, ErrInvalidSalary
	}
	if err := ValidateScheme(scheme); err != nil {
		return NetSalaryResult{}, err
	}
	return c.ComputeNetSalary(grossMonthlySalary, scheme), nil
}

func ComputeNetSalaryStrict(grossMonthlySalary float64, scheme PensionScheme) (NetSalaryResult, error) {
	return DefaultCalculator().ComputeNetSalaryStrict(grossMonthlySalary, scheme)
}
