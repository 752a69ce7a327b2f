package payroll

import "math"

// TaxConstants holds the reference values a computation runs against.
type TaxConstants struct {
	TaxUnit float64 `json:"taxUnit"`
}

func DefaultTaxConstants() TaxConstants {
	return TaxConstants{TaxUnit: DefaultTaxUnit}
}

func (c TaxConstants) AnnualExemptThreshold() float64 {
	return ExemptTaxUnits * c.TaxUnit
}

func (c TaxConstants) MonthlyExemptThreshold() float64 {
	return c.AnnualExemptThreshold() / MonthsPerYear
}

// PensionScheme is either PrivateScheme or PublicScheme.
type PensionScheme interface {
	Kind() string
	Rate() float64
	pensionScheme()
}

// PrivateScheme is an AFP affiliation with its own contribution rate.
// Rate clamps RatePercent into [0, 100]; ValidateScheme rejects values
// outside that range instead.
type PrivateScheme struct {
	RatePercent float64
}

func (PrivateScheme) Kind() string   { return SchemeKindPrivate }
func (PrivateScheme) pensionScheme() {}

func (s PrivateScheme) Rate() float64 {
	switch {
	case math.IsNaN(s.RatePercent) || s.RatePercent <= 0:
		return 0
	case s.RatePercent >= 100:
		return 1
	}
	return s.RatePercent / 100
}

// PublicScheme is the ONP, charged at a fixed rate.
type PublicScheme struct{}

func (PublicScheme) Kind() string   { return SchemeKindPublic }
func (PublicScheme) Rate() float64  { return PublicSchemeRate }
func (PublicScheme) pensionScheme() {}

type NetSalaryResult struct {
	GrossSalary      float64 `json:"grossSalary"`
	PensionDeduction float64 `json:"pensionDeduction"`
	IncomeTax        float64 `json:"incomeTax"`
	NetSalary        float64 `json:"netSalary"`
}

type CTSResult struct {
	Salary            float64 `json:"salary"`
	MonthsWorked      float64 `json:"monthsWorked"`
	ProportionalBonus float64 `json:"proportionalBonus"`
	ComputablePay     float64 `json:"computablePay"`
	CTS               float64 `json:"cts"`
}

type BonusResult struct {
	Salary        float64 `json:"salary"`
	MonthsWorked  float64 `json:"monthsWorked"`
	JulyBonus     float64 `json:"julyBonus"`
	DecemberBonus float64 `json:"decemberBonus"`
	Total         float64 `json:"total"`
}

type ProfitSharingResult struct {
	Salary       float64 `json:"salary"`
	MonthsWorked float64 `json:"monthsWorked"`
	AnnualProfit float64 `json:"annualProfit"`
	Percent      float64 `json:"percent"`
	Share        float64 `json:"share"`
}

type VacationResult struct {
	Salary          float64 `json:"salary"`
	MonthsWorked    float64 `json:"monthsWorked"`
	Days            float64 `json:"days"`
	Amount          float64 `json:"amount"`
	TruncatedAmount float64 `json:"truncatedAmount"`
}

// Summary collects every tab's figures for one base salary. A nil field
// means that tab had nothing to compute.
type Summary struct {
	NetSalary     NetSalaryResult      `json:"netSalary"`
	CTS           *CTSResult           `json:"cts,omitempty"`
	Bonuses       *BonusResult         `json:"bonuses,omitempty"`
	ProfitSharing *ProfitSharingResult `json:"profitSharing,omitempty"`
	Vacation      *VacationResult      `json:"vacation,omitempty"`
}

type SamplePoint struct {
	Salary           float64 `json:"salary"`
	PrivateNet       float64 `json:"privateNet"`
	PublicNet        float64 `json:"publicNet"`
	PrivateDeduction float64 `json:"privateDeduction"`
	PublicDeduction  float64 `json:"publicDeduction"`
	IncomeTax        float64 `json:"incomeTax"`
}
