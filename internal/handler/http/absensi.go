package http

import (
	"encoding/json"
	"net/http"

	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
	"github.com/piket-xe8/piket-backend-go/internal/handler/http/response"
)

type AbsensiHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Log(w http.ResponseWriter, r *http.Request)
}

type absensiHandlerImpl struct {
	absensiService absensi.Service
}

func NewAbsensiHandler(absensiService absensi.Service) AbsensiHandler {
	return &absensiHandlerImpl{
		absensiService: absensiService,
	}
}

// Scan implements AbsensiHandler.
func (h *absensiHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var req absensi.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Students can only scan for themselves; the name in the token wins
	// over whatever the client sent.
	if nama := claimNama(r); nama != "" {
		req.Nama = nama
	}

	result, err := h.absensiService.ScanQR(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Absen masuk tercatat"
	if result.Status == absensi.StatusCheckedOut {
		message = "Piket selesai, terima kasih!"
	}
	response.SuccessWithMessage(w, message, result)
}

// Today implements AbsensiHandler.
func (h *absensiHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	records, err := h.absensiService.GetToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// Log implements AbsensiHandler.
func (h *absensiHandlerImpl) Log(w http.ResponseWriter, r *http.Request) {
	records, err := h.absensiService.GetLog(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}
