package payroll

import "errors"

var (
	ErrInvalidSalary        = errors.New("gross salary must be a positive amount no larger than MaxAmount")
	ErrInvalidPensionRate   = errors.New("private pension rate must be between 0 and 100 percent")
	ErrUnknownPensionScheme = errors.New("unknown pension scheme")
	ErrInvalidSchedule      = errors.New("tax schedule brackets must ascend and end unbounded")
	ErrInvalidTaxUnit       = errors.New("tax unit must be a finite positive amount")
	ErrInvalidRange         = errors.New("salary range is invalid")
	ErrRangeTooLarge        = errors.New("salary range has too many points")
)
