package http

import (
	"net/http"

	"github.com/gymrepublic/gym-console/internal/domain/dashboard"
	"github.com/gymrepublic/gym-console/internal/handler/http/response"
)

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Get returns the dashboard figures: availments, service sales, the gender
// split and sales per month and per day.
func (h *dashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	d, err := h.dashboardService.Get(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard.ToDashboardResponse(d))
}
