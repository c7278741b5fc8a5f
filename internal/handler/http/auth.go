package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/piket-xe8/piket-backend-go/internal/domain/auth"
	"github.com/piket-xe8/piket-backend-go/internal/handler/http/response"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	SSEToken(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.Service
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.Service, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login berhasil", result)
}

// SSEToken issues a short-lived token for the EventSource stream, which
// cannot send an Authorization header.
func (h *authHandlerImpl) SSEToken(w http.ResponseWriter, r *http.Request) {
	id, err := subjectID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(strconv.Itoa(id))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"token":     token,
		"expiresIn": expiresIn,
	})
}
