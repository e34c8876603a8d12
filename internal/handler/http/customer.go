package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gymrepublic/gym-console/internal/domain/customer"
	"github.com/gymrepublic/gym-console/internal/handler/http/response"
)

type CustomerHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
}

type customerHandlerImpl struct {
	customerService customer.CustomerService
}

func NewCustomerHandler(customerService customer.CustomerService) CustomerHandler {
	return &customerHandlerImpl{customerService: customerService}
}

func (h *customerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	list, err := h.customerService.List(r.Context(), sess, r.URL.Query().Get("search"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list, &response.Meta{TotalItems: len(list)})
}

func (h *customerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req customer.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.customerService.Update(r.Context(), sess, chi.URLParam(r, "id"), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer updated successfully", nil)
}

func (h *customerHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.customerService.Archive(r.Context(), sess, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer archived successfully", nil)
}
