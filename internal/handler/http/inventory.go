package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gymrepublic/gym-console/internal/domain/inventory"
	"github.com/gymrepublic/gym-console/internal/domain/report"
	"github.com/gymrepublic/gym-console/internal/handler/http/response"
)

type InventoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type inventoryHandlerImpl struct {
	inventoryService inventory.InventoryService
	reportService    report.ReportService
}

func NewInventoryHandler(inventoryService inventory.InventoryService, reportService report.ReportService) InventoryHandler {
	return &inventoryHandlerImpl{
		inventoryService: inventoryService,
		reportService:    reportService,
	}
}

// List returns every item, or only supplements or equipment with ?type=.
func (h *inventoryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	items, err := h.inventoryService.List(r.Context(), sess, inventory.ItemType(r.URL.Query().Get("type")))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]inventory.ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, inventory.ToItemResponse(item))
	}
	response.SuccessWithMeta(w, resp, &response.Meta{TotalItems: len(resp)})
}

func (h *inventoryHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	summary, _, err := h.inventoryService.Summary(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, inventory.ToSummaryResponse(summary))
}

func (h *inventoryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req inventory.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.inventoryService.Update(r.Context(), sess, chi.URLParam(r, "id"), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Item updated successfully", nil)
}

func (h *inventoryHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.inventoryService.Archive(r.Context(), sess, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Item archived successfully", nil)
}

func (h *inventoryHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
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

	doc, err := h.reportService.InventoryReport(r.Context(), sess, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	writeDocument(w, doc)
}
