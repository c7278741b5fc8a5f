package http

import (
	"encoding/json"
	"net/http"

	"github.com/piket-xe8/piket-backend-go/internal/domain/setting"
	"github.com/piket-xe8/piket-backend-go/internal/handler/http/response"
)

// MasterHandler serves small master-data surfaces that do not warrant
// their own service: the tunable app settings.
type MasterHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	settings setting.Repository
}

func NewMasterHandler(settings setting.Repository) MasterHandler {
	return &masterHandlerImpl{
		settings: settings,
	}
}

// GetSettings implements MasterHandler.
func (h *masterHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settings.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cfg)
}

// UpdateSettings implements MasterHandler.
func (h *masterHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req setting.AppSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.settings.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Pengaturan disimpan", req)
}
