package http

import (
	"net/http"

	"github.com/piket-xe8/piket-backend-go/internal/domain/dashboard"
	"github.com/piket-xe8/piket-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	AdminStats(w http.ResponseWriter, r *http.Request)
	Statistics(w http.ResponseWriter, r *http.Request)
	Monitoring(w http.ResponseWriter, r *http.Request)
	AdvancedStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// AdminStats implements DashboardHandler.
func (h *dashboardHandlerImpl) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.AdminStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// Statistics implements DashboardHandler.
func (h *dashboardHandlerImpl) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Statistics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// Monitoring implements DashboardHandler.
func (h *dashboardHandlerImpl) Monitoring(w http.ResponseWriter, r *http.Request) {
	rows, err := h.dashboardService.Monitoring(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// AdvancedStats implements DashboardHandler.
func (h *dashboardHandlerImpl) AdvancedStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.AdvancedStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}
