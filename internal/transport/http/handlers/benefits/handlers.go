package benefitshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"planilla/internal/domain/payroll"
	"planilla/internal/platform/metrics"
	"planilla/internal/transport/http/api"
	"planilla/internal/transport/http/middleware"
	"planilla/internal/transport/http/shared"
)

type Handler struct {
	Calc    payroll.Calculator
	Metrics *metrics.Collector
}

func NewHandler(calc payroll.Calculator, collector *metrics.Collector) *Handler {
	return &Handler{Calc: calc, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/benefits", func(r chi.Router) {
		r.Get("/cts", h.handleCTS)
		r.Get("/bonuses", h.handleBonuses)
		r.Get("/profit-sharing", h.handleProfitSharing)
		r.Get("/vacation", h.handleVacation)
		r.Get("/summary", h.handleSummary)
	})
}

// result wraps a tab's figures. Computed is false when an input is still
// missing, mirroring an empty result panel.
type result[T any] struct {
	Computed bool `json:"computed"`
	Result   *T   `json:"result,omitempty"`
}

func respond[T any](w http.ResponseWriter, r *http.Request, value T, ok bool) {
	out := result[T]{Computed: ok}
	if ok {
		out.Result = &value
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCTS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := shared.NewValidator()
	salary := v.Amount("salary", q.Get("salary"), 0)
	months := v.Amount("months", q.Get("months"), payroll.DefaultCTSMonths)
	v.Range("months", months, 0, 12)
	bonus := v.Amount("bonus", q.Get("bonus"), 0)
	v.WithinLimit("salary", salary)
	v.WithinLimit("bonus", bonus)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	cts, ok := payroll.ComputeCTS(salary, months, bonus)
	respond(w, r, cts, ok)
}

func (h *Handler) handleBonuses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := shared.NewValidator()
	salary := v.Amount("salary", q.Get("salary"), 0)
	july := v.Amount("monthsJuly", q.Get("monthsJuly"), payroll.DefaultBonusMonthsPerPeriod)
	december := v.Amount("monthsDecember", q.Get("monthsDecember"), payroll.DefaultBonusMonthsPerPeriod)
	v.Range("monthsJuly", july, 0, payroll.BonusPeriodMonths)
	v.Range("monthsDecember", december, 0, payroll.BonusPeriodMonths)
	v.WithinLimit("salary", salary)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	bonuses, ok := payroll.ComputeBonuses(salary, july, december)
	respond(w, r, bonuses, ok)
}

func (h *Handler) handleProfitSharing(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := shared.NewValidator()
	salary := v.Amount("salary", q.Get("salary"), 0)
	months := v.Amount("months", q.Get("months"), payroll.MonthsPerYear)
	v.Range("months", months, 0, 12)
	profit := v.Amount("annualProfit", q.Get("annualProfit"), 0)
	percent := v.Amount("percent", q.Get("percent"), payroll.DefaultProfitSharingPercent)
	v.Range("percent", percent, 0, 100)
	v.WithinLimit("salary", salary)
	v.WithinLimit("annualProfit", profit)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	share, ok := payroll.ComputeProfitSharing(salary, months, profit, percent)
	respond(w, r, share, ok)
}

func (h *Handler) handleVacation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := shared.NewValidator()
	salary := v.Amount("salary", q.Get("salary"), 0)
	months := v.Amount("months", q.Get("months"), payroll.DefaultVacationMonths)
	v.Range("months", months, 0, 12)
	v.WithinLimit("salary", salary)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	vacation, ok := payroll.ComputeVacation(salary, months)
	respond(w, r, vacation, ok)
}

// handleSummary fills every tab from the single base salary field.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	q := r.URL.Query()
	v := shared.NewValidator()
	scheme, rateOK := v.PensionScheme("scheme", q.Get("scheme"), "afpRate", q.Get("afpRate"))
	if !rateOK {
		v.Add("afpRate", "must be a number")
	}
	profit := v.Amount("annualProfit", q.Get("annualProfit"), 0)
	v.WithinLimit("annualProfit", profit)
	salary, ok := shared.ParseAmount(q.Get("salary"))
	if ok {
		v.WithinLimit("salary", salary)
	}
	if v.Reject(w, reqID) {
		return
	}

	if !ok || salary <= 0 {
		respond(w, r, payroll.Summary{}, false)
		return
	}
	summary := h.Calc.Summarize(salary, scheme, profit)
	h.Metrics.RecordCalculations(1)
	respond(w, r, summary, true)
}
