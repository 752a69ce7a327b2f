package salaryhandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"planilla/internal/domain/payroll"
	"planilla/internal/platform/metrics"
	"planilla/internal/platform/money"
	"planilla/internal/transport/http/api"
	"planilla/internal/transport/http/middleware"
	"planilla/internal/transport/http/shared"
)

const maxBatchItems = 1000

type Handler struct {
	Calc      payroll.Calculator
	Metrics   *metrics.Collector
	MaxPoints int
	Workers   int
}

func NewHandler(calc payroll.Calculator, collector *metrics.Collector, maxPoints, workers int) *Handler {
	return &Handler{Calc: calc, Metrics: collector, MaxPoints: maxPoints, Workers: workers}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/salary", func(r chi.Router) {
		r.Get("/net", h.handleNetSalary)
		r.Post("/net/batch", h.handleNetSalaryBatch)
		r.Get("/tax-schedule", h.handleTaxSchedule)
		r.Get("/analysis", h.handleAnalysis)
		r.Get("/statement.pdf", h.handleStatement)
	})
}

type amounts struct {
	GrossSalary      string `json:"grossSalary"`
	PensionDeduction string `json:"pensionDeduction"`
	IncomeTax        string `json:"incomeTax"`
	NetSalary        string `json:"netSalary"`
}

type breakdown struct {
	AnnualGross   float64 `json:"annualGross"`
	ExemptAnnual  float64 `json:"exemptAnnual"`
	TaxableBase   float64 `json:"taxableBase"`
	Bracket       int     `json:"bracket"`
	MarginalRate  float64 `json:"marginalRate"`
	AnnualTax     float64 `json:"annualTax"`
	PensionScheme string  `json:"pensionScheme"`
	PensionRate   float64 `json:"pensionRate"`
}

type netSalaryResponse struct {
	Computed  bool                     `json:"computed"`
	Result    *payroll.NetSalaryResult `json:"result,omitempty"`
	Display   *amounts                 `json:"display,omitempty"`
	Breakdown *breakdown               `json:"breakdown,omitempty"`
}

// handleNetSalary answers the salary form. Blank or unparseable input is
// not an error: the form simply has nothing to show yet.
func (h *Handler) handleNetSalary(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	q := r.URL.Query()

	v := shared.NewValidator()
	scheme, rateOK := v.PensionScheme("scheme", q.Get("scheme"), "afpRate", q.Get("afpRate"))
	gross, ok := shared.ParseAmount(q.Get("gross"))
	if ok {
		v.WithinLimit("gross", gross)
	}
	if v.Reject(w, reqID) {
		return
	}

	if !ok || !rateOK {
		api.Success(w, netSalaryResponse{Computed: false}, reqID)
		return
	}

	result := h.Calc.ComputeNetSalary(gross, scheme)
	h.Metrics.RecordCalculations(1)

	resp := netSalaryResponse{Computed: gross > 0, Result: &result}
	if resp.Computed {
		resp.Display = displayAmounts(result)
		resp.Breakdown = h.breakdown(gross, scheme)
	}
	api.Success(w, resp, reqID)
}

type batchItem struct {
	GrossSalary    float64  `json:"grossSalary"`
	Scheme         string   `json:"scheme"`
	AfpRatePercent *float64 `json:"afpRatePercent,omitempty"`
}

type batchResult struct {
	Index  int                     `json:"index"`
	Scheme string                  `json:"scheme"`
	Result payroll.NetSalaryResult `json:"result"`
}

// handleNetSalaryBatch is the strict counterpart of the form: every item
// must carry a positive salary and a valid scheme, otherwise nothing is
// computed.
func (h *Handler) handleNetSalaryBatch(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var items []batchItem
	if err := api.Decode(r, &items); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	if len(items) == 0 {
		v.Add("items", "must contain at least one entry")
	}
	if len(items) > maxBatchItems {
		v.Add("items", "must contain at most "+strconv.Itoa(maxBatchItems)+" entries")
	}
	if v.Reject(w, reqID) {
		return
	}

	results := make([]batchResult, 0, len(items))
	for i, item := range items {
		prefix := "items[" + strconv.Itoa(i) + "]."
		rate := payroll.DefaultPrivateRatePercent
		if item.AfpRatePercent != nil {
			rate = *item.AfpRatePercent
		}
		scheme, err := payroll.ParsePensionScheme(item.Scheme, rate)
		if err != nil {
			v.Add(prefix+"scheme", "must be afp or onp")
			continue
		}
		result, err := h.Calc.ComputeNetSalaryStrict(item.GrossSalary, scheme)
		switch {
		case errors.Is(err, payroll.ErrInvalidSalary):
			v.Add(prefix+"grossSalary", "must be a positive amount no larger than "+strconv.FormatFloat(payroll.MaxAmount, 'f', -1, 64))
			continue
		case errors.Is(err, payroll.ErrInvalidPensionRate):
			v.Add(prefix+"afpRatePercent", "must be between 0 and 100")
			continue
		case err != nil:
			v.Add(prefix+"scheme", err.Error())
			continue
		}
		results = append(results, batchResult{Index: i, Scheme: scheme.Kind(), Result: result})
	}
	if v.Reject(w, reqID) {
		return
	}

	h.Metrics.RecordCalculations(len(results))
	api.Success(w, results, reqID)
}

type taxScheduleResponse struct {
	TaxUnit                   float64           `json:"taxUnit"`
	AnnualExemptThreshold     float64           `json:"annualExemptThreshold"`
	MonthlyExemptThreshold    float64           `json:"monthlyExemptThreshold"`
	BonusLoadFactor           float64           `json:"bonusLoadFactor"`
	DefaultPrivateRatePercent float64           `json:"defaultPrivateRatePercent"`
	PublicSchemeRatePercent   float64           `json:"publicSchemeRatePercent"`
	Brackets                  []bracketResponse `json:"brackets"`
}

type bracketResponse struct {
	FromTaxUnits float64  `json:"fromTaxUnits"`
	ToTaxUnits   *float64 `json:"toTaxUnits"`
	From         float64  `json:"from"`
	To           *float64 `json:"to"`
	Rate         float64  `json:"rate"`
}

func (h *Handler) handleTaxSchedule(w http.ResponseWriter, r *http.Request) {
	c := h.Calc.Constants
	resp := taxScheduleResponse{
		TaxUnit:                   c.TaxUnit,
		AnnualExemptThreshold:     c.AnnualExemptThreshold(),
		MonthlyExemptThreshold:    money.Round2(c.MonthlyExemptThreshold()),
		BonusLoadFactor:           payroll.BonusLoadFactor,
		DefaultPrivateRatePercent: payroll.DefaultPrivateRatePercent,
		PublicSchemeRatePercent:   payroll.PublicSchemeRate * 100,
	}
	floor := 0.0
	for _, b := range h.Calc.Schedule {
		br := bracketResponse{FromTaxUnits: floor, From: floor * c.TaxUnit, Rate: b.Rate}
		if !isUnbounded(b.UpToTaxUnits) {
			upTo := b.UpToTaxUnits
			to := upTo * c.TaxUnit
			br.ToTaxUnits = &upTo
			br.To = &to
		}
		resp.Brackets = append(resp.Brackets, br)
		floor = b.UpToTaxUnits
	}
	api.Success(w, resp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) breakdown(gross float64, scheme payroll.PensionScheme) *breakdown {
	base := h.Calc.TaxableBase(gross)
	out := &breakdown{
		AnnualGross:   h.Calc.AnnualGross(gross),
		ExemptAnnual:  h.Calc.Constants.AnnualExemptThreshold(),
		TaxableBase:   base,
		Bracket:       h.Calc.Schedule.BracketFor(base, h.Calc.Constants.TaxUnit),
		AnnualTax:     h.Calc.Schedule.AnnualTax(base, h.Calc.Constants.TaxUnit),
		PensionScheme: scheme.Kind(),
		PensionRate:   scheme.Rate(),
	}
	if out.Bracket >= 0 {
		out.MarginalRate = h.Calc.Schedule[out.Bracket].Rate
	}
	return out
}

func displayAmounts(result payroll.NetSalaryResult) *amounts {
	return &amounts{
		GrossSalary:      money.Format(result.GrossSalary),
		PensionDeduction: money.Format(result.PensionDeduction),
		IncomeTax:        money.Format(result.IncomeTax),
		NetSalary:        money.Format(result.NetSalary),
	}
}
