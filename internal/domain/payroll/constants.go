package payroll

const (
	// DefaultTaxUnit is the UIT (Unidad Impositiva Tributaria) in soles.
	DefaultTaxUnit = 5350.0

	// ExemptTaxUnits is the number of UITs deducted from annual income
	// before the bracket schedule applies.
	ExemptTaxUnits = 7.0

	DefaultPrivateRatePercent = 10.23
	PublicSchemeRate          = 0.13

	// BonusLoadFactor scales each of the two statutory bonus payments
	// when annualizing gross pay.
	BonusLoadFactor = 1.09

	BonusPaymentsPerYear = 2
	MonthsPerYear        = 12

	// MaxAmount is the largest salary or profit figure the calculators
	// accept. Annualizing anything larger loses cent precision long
	// before it overflows.
	MaxAmount = 1e12

	SchemeKindPrivate = "afp"
	SchemeKindPublic  = "onp"
)

// Defaults used by the benefit tabs when the caller leaves a field empty.
const (
	DefaultCTSMonths            = 12.0
	DefaultBonusMonthsPerPeriod = 6.0
	DefaultProfitSharingPercent = 8.0
	DefaultVacationMonths       = 12.0

	VacationDaysPerYear = 30.0
	DaysPerPayMonth     = 30.0
	BonusPeriodMonths   = 6.0
	CTSBonusFraction    = 6.0
)
