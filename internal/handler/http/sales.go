package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gymrepublic/gym-console/internal/domain/report"
	"github.com/gymrepublic/gym-console/internal/domain/sales"
	"github.com/gymrepublic/gym-console/internal/handler/http/response"
)

type SalesHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	ArchiveMembership(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type salesHandlerImpl struct {
	salesService  sales.SalesService
	reportService report.ReportService
}

func NewSalesHandler(salesService sales.SalesService, reportService report.ReportService) SalesHandler {
	return &salesHandlerImpl{
		salesService:  salesService,
		reportService: reportService,
	}
}

func (h *salesHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	overview, err := h.salesService.Overview(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sales.ToOverviewResponse(overview))
}

func (h *salesHandlerImpl) ArchiveMembership(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.salesService.ArchiveMembership(r.Context(), sess, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transaction archived successfully", nil)
}

func (h *salesHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	exportReq := report.ExportRequest{Format: r.URL.Query().Get("format")}
	format, err := exportReq.Validate()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.reportService.SalesReport(r.Context(), sess, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	writeDocument(w, doc)
}
