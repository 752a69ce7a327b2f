package salaryhandler

import (
	"context"
	"encoding/csv"
	"errors"
	"math"
	"net/http"
	"strings"

	"planilla/internal/domain/payroll"
	"planilla/internal/platform/money"
	"planilla/internal/requestctx"
	"planilla/internal/transport/http/api"
	"planilla/internal/transport/http/middleware"
	"planilla/internal/transport/http/shared"
)

type analysisResponse struct {
	Range          payroll.SampleRange   `json:"range"`
	AfpRatePercent float64               `json:"afpRatePercent"`
	Points         []payroll.SamplePoint `json:"points"`
}

var analysisFormats = []string{"json", "csv"}

func (h *Handler) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	q := r.URL.Query()

	v := shared.NewValidator()
	def := payroll.DefaultSampleRange()
	rng := payroll.SampleRange{
		From: v.Amount("from", q.Get("from"), def.From),
		To:   v.Amount("to", q.Get("to"), def.To),
		Step: v.Amount("step", q.Get("step"), def.Step),
	}
	v.WithinLimit("from", rng.From)
	v.WithinLimit("to", rng.To)
	rate := v.Amount("afpRate", q.Get("afpRate"), payroll.DefaultPrivateRatePercent)
	v.Range("afpRate", rate, 0, 100)
	format := strings.ToLower(strings.TrimSpace(q.Get("format")))
	v.Enum("format", format, analysisFormats, "must be json or csv")
	if v.Reject(w, reqID) {
		return
	}

	if err := rng.Validate(h.MaxPoints); err != nil {
		switch {
		case errors.Is(err, payroll.ErrRangeTooLarge):
			v.Add("step", "range yields too many points")
		default:
			v.Add("range", "from must not exceed to and step must be positive")
		}
		v.Reject(w, reqID)
		return
	}

	points, err := h.Calc.Sample(r.Context(), rng, rate, h.Workers)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		requestctx.Logger(r.Context()).Error("salary analysis failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "analysis_failed", "failed to build salary analysis", reqID)
		return
	}
	h.Metrics.RecordSample(len(points))

	if format == "csv" {
		writeAnalysisCSV(r.Context(), w, points)
		return
	}
	api.Success(w, analysisResponse{Range: rng, AfpRatePercent: rate, Points: points}, reqID)
}

func writeAnalysisCSV(ctx context.Context, w http.ResponseWriter, points []payroll.SamplePoint) {
	logger := requestctx.Logger(ctx)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=salary-analysis.csv")
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"salary", "private_net", "public_net", "private_deduction", "public_deduction", "income_tax"}); err != nil {
		logger.Warn("analysis header write failed", "err", err)
	}
	for _, p := range points {
		row := []string{
			money.Fixed2(p.Salary),
			money.Fixed2(p.PrivateNet),
			money.Fixed2(p.PublicNet),
			money.Fixed2(p.PrivateDeduction),
			money.Fixed2(p.PublicDeduction),
			money.Fixed2(p.IncomeTax),
		}
		if err := writer.Write(row); err != nil {
			logger.Warn("analysis row write failed", "err", err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		logger.Warn("analysis flush failed", "err", err)
	}
}

func isUnbounded(v float64) bool {
	return math.IsInf(v, 1)
}
