package salaryhandler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"planilla/internal/domain/payroll"
	"planilla/internal/platform/money"
	"planilla/internal/requestctx"
	"planilla/internal/transport/http/api"
	"planilla/internal/transport/http/middleware"
	"planilla/internal/transport/http/shared"
)

// handleStatement renders the net salary breakdown for one gross salary as
// a single A4 page.
func (h *Handler) handleStatement(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	q := r.URL.Query()

	v := shared.NewValidator()
	scheme, rateOK := v.PensionScheme("scheme", q.Get("scheme"), "afpRate", q.Get("afpRate"))
	if !rateOK {
		v.Add("afpRate", "must be a number")
	}
	raw := q.Get("gross")
	v.Required("gross", raw, "is required")
	gross, ok := shared.ParseAmount(raw)
	if ok {
		v.Positive("gross", gross)
		v.WithinLimit("gross", gross)
	} else if strings.TrimSpace(raw) != "" {
		v.Add("gross", "must be a number")
	}
	if v.Reject(w, reqID) {
		return
	}

	result := h.Calc.ComputeNetSalary(gross, scheme)
	h.Metrics.RecordCalculations(1)

	doc, err := h.renderStatement(result, scheme)
	if err != nil {
		requestctx.Logger(r.Context()).Error("statement render failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "statement_failed", "failed to render statement", reqID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename=salary-statement.pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		requestctx.Logger(r.Context()).Warn("statement write failed", "err", err)
	}
}

func (h *Handler) renderStatement(result payroll.NetSalaryResult, scheme payroll.PensionScheme) ([]byte, error) {
	detail := h.breakdown(result.GrossSalary, scheme)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Salary statement", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary statement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Pension scheme: %s (%s)", schemeLabel(scheme), money.Percent(scheme.Rate()*100)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Tax unit (UIT): %s", money.Format(h.Calc.Constants.TaxUnit)))
	pdf.Ln(10)

	line := func(label string, amount float64) {
		pdf.CellFormat(100, 8, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, money.Format(amount), "", 1, "R", false, 0, "")
	}
	line("Gross salary", result.GrossSalary)
	line("Pension deduction", result.PensionDeduction)
	line("Income tax (5th category)", result.IncomeTax)
	pdf.SetFont("Helvetica", "B", 12)
	line("Net salary", result.NetSalary)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	line("Annual gross incl. bonuses", detail.AnnualGross)
	line("Annual exemption (7 UIT)", detail.ExemptAnnual)
	line("Taxable base", detail.TaxableBase)
	line("Annual income tax", detail.AnnualTax)
	if detail.Bracket >= 0 {
		pdf.Cell(0, 8, fmt.Sprintf("Marginal bracket: %d at %s", detail.Bracket+1, money.Percent(detail.MarginalRate*100)))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func schemeLabel(scheme payroll.PensionScheme) string {
	switch scheme.(type) {
	case payroll.PublicScheme:
		return "ONP"
	default:
		return "AFP"
	}
}
