package http

import (
	"encoding/json"
	"net/http"

	"github.com/piket-xe8/piket-backend-go/internal/domain/schedule"
	"github.com/piket-xe8/piket-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	UpdateDay(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// Get implements ScheduleHandler.
func (h *scheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	roster, err := h.scheduleService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, roster)
}

// Today implements ScheduleHandler.
func (h *scheduleHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	roster, err := h.scheduleService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, roster)
}

// UpdateDay implements ScheduleHandler.
func (h *scheduleHandlerImpl) UpdateDay(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.scheduleService.UpdateDay(r.Context(), req, claimNama(r)); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Jadwal diperbarui", nil)
}
