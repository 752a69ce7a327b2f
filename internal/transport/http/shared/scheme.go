package shared

import (
	"strings"

	"planilla/internal/domain/payroll"
)

var schemeKinds = []string{payroll.SchemeKindPrivate, payroll.SchemeKindPublic}

// PensionScheme reads the scheme and private rate fields of a form. The
// scheme defaults to the private one at its default rate. ok is false when
// the private rate was typed but is not a number.
func (v *Validator) PensionScheme(kindField, kind, rateField, rawRate string) (payroll.PensionScheme, bool) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		kind = payroll.SchemeKindPrivate
	}
	v.Enum(kindField, kind, schemeKinds, "must be afp or onp")
	if kind == payroll.SchemeKindPublic {
		return payroll.PublicScheme{}, true
	}

	rate := payroll.DefaultPrivateRatePercent
	if strings.TrimSpace(rawRate) != "" {
		parsed, ok := ParseAmount(rawRate)
		if !ok {
			return payroll.PrivateScheme{RatePercent: rate}, false
		}
		rate = parsed
		v.Range(rateField, rate, 0, 100)
	}
	return payroll.PrivateScheme{RatePercent: rate}, true
}
