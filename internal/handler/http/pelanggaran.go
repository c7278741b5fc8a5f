package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/piket-xe8/piket-backend-go/internal/domain/pelanggaran"
	"github.com/piket-xe8/piket-backend-go/internal/handler/http/response"
)

type PelanggaranHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Kinds(w http.ResponseWriter, r *http.Request)
}

type pelanggaranHandlerImpl struct {
	pelanggaranService pelanggaran.Service
}

func NewPelanggaranHandler(pelanggaranService pelanggaran.Service) PelanggaranHandler {
	return &pelanggaranHandlerImpl{
		pelanggaranService: pelanggaranService,
	}
}

// Add implements PelanggaranHandler.
func (h *pelanggaranHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var req pelanggaran.AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.pelanggaranService.Add(r.Context(), req, claimNama(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Pelanggaran tercatat", created)
}

// List implements PelanggaranHandler.
func (h *pelanggaranHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	violations, err := h.pelanggaranService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, violations)
}

// Delete implements PelanggaranHandler.
func (h *pelanggaranHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid violation id", nil)
		return
	}

	if err := h.pelanggaranService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Pelanggaran dihapus", nil)
}

// Kinds lists the valid violation kinds for form dropdowns.
func (h *pelanggaranHandlerImpl) Kinds(w http.ResponseWriter, r *http.Request) {
	response.Success(w, pelanggaran.AllJenis())
}
