package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/piket-xe8/piket-backend-go/internal/domain/auth"
	"github.com/piket-xe8/piket-backend-go/internal/handler/http/response"
)

// AuthRequired admits only requests carrying a valid access token,
// student and staff alike. Short-lived stream tokens are rejected here;
// they authorize nothing but the event stream, which validates them
// itself from the query string.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if !isAccessToken(token) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isAccessToken(token jwt.Token) bool {
	if token == nil {
		return false
	}
	kind, ok := token.Get("type")
	return ok && kind == "access"
}
