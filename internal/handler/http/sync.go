package http

import (
	"net/http"

	syncdomain "github.com/piket-xe8/piket-backend-go/internal/domain/sync"
	"github.com/piket-xe8/piket-backend-go/internal/handler/http/response"
)

type SyncHandler interface {
	Refresh(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type syncHandlerImpl struct {
	syncService syncdomain.Service
}

func NewSyncHandler(syncService syncdomain.Service) SyncHandler {
	return &syncHandlerImpl{
		syncService: syncService,
	}
}

// Refresh triggers one sync cycle. The engine debounces internally, so
// hammering this endpoint cannot flood the remote side.
func (h *syncHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.syncService.FetchAndSync(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Status implements SyncHandler.
func (h *syncHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.syncService.State())
}
