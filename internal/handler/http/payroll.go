package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gymrepublic/gym-console/internal/domain/payroll"
	"github.com/gymrepublic/gym-console/internal/domain/report"
	"github.com/gymrepublic/gym-console/internal/handler/http/response"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
	reportService  report.ReportService
}

func NewPayrollHandler(payrollService payroll.PayrollService, reportService report.ReportService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		reportService:  reportService,
	}
}

func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	list, err := h.payrollService.List(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list, &response.Meta{TotalItems: len(list)})
}

func (h *payrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req payroll.CreatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.payrollService.Create(r.Context(), sess, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll created successfully", created)
}

// Archive soft-deletes the payroll record. The console confirms with the
// user before calling it.
func (h *payrollHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.payrollService.Archive(r.Context(), sess, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll archived successfully", nil)
}

func (h *payrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	doc, err := h.reportService.Payslip(r.Context(), sess, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	writeDocument(w, doc)
}
