package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/piket-xe8/piket-backend-go/internal/domain/laporan"
	"github.com/piket-xe8/piket-backend-go/internal/handler/http/response"
)

type LaporanHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DeleteMany(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type laporanHandlerImpl struct {
	laporanService laporan.Service
}

func NewLaporanHandler(laporanService laporan.Service) LaporanHandler {
	return &laporanHandlerImpl{
		laporanService: laporanService,
	}
}

// Create implements LaporanHandler.
func (h *laporanHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req laporan.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.laporanService.Create(r.Context(), req, claimNama(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Laporan tersimpan", created)
}

// List implements LaporanHandler.
func (h *laporanHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.laporanService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, reports)
}

// Mine returns the calling student's own submitted reports.
func (h *laporanHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	reports, err := h.laporanService.ListForStudent(r.Context(), claimNama(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, reports)
}

// Delete implements LaporanHandler.
func (h *laporanHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid report id", nil)
		return
	}

	if err := h.laporanService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Laporan dihapus", nil)
}

// DeleteMany implements LaporanHandler.
func (h *laporanHandlerImpl) DeleteMany(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []int `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if len(req.IDs) == 0 {
		response.BadRequest(w, "ids is required", nil)
		return
	}

	deleted, err := h.laporanService.DeleteMany(r.Context(), req.IDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Laporan dihapus", map[string]int{"deleted": deleted})
}

// UpdateStatus implements LaporanHandler.
func (h *laporanHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req laporan.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.laporanService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Status laporan diperbarui", map[string]int{"updated": updated})
}
