package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"

	"github.com/piket-xe8/piket-backend-go/internal/domain/auth"
)

// subjectID extracts the numeric account id from the token subject.
func subjectID(r *http.Request) (int, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, auth.ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, auth.ErrInvalidToken
	}
	id, err := strconv.Atoi(sub)
	if err != nil {
		return 0, auth.ErrInvalidToken
	}
	return id, nil
}

// claimNama extracts the display name carried in the token.
func claimNama(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	nama, _ := claims["nama"].(string)
	return nama
}
