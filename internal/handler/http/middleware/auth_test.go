package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piket-xe8/piket-backend-go/internal/domain/user"
	appjwt "github.com/piket-xe8/piket-backend-go/internal/pkg/jwt"
)

func newProtected(t *testing.T) (appjwt.Service, http.Handler) {
	t.Helper()
	jwtService := appjwt.NewJWTService("test-secret", "15m")
	ja := jwtService.JWTAuth()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return jwtService, jwtauth.Verifier(ja)(AuthRequired(ja)(next))
}

func TestAuthRequiredAdmitsAccessToken(t *testing.T) {
	jwtService, handler := newProtected(t)

	token, _, err := jwtService.GenerateAccessToken("1", "Rakha Pratama", user.RoleSiswa)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/absensi/today", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthRequiredRejectsStreamToken(t *testing.T) {
	jwtService, handler := newProtected(t)

	// Stream tokens authorize only the event stream, never API routes.
	token, _, err := jwtService.GenerateSSEToken("1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/absensi/today", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	_, handler := newProtected(t)

	req := httptest.NewRequest(http.MethodGet, "/absensi/today", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
