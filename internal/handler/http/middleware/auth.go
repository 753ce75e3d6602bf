package middleware

import (
	"net/http"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/auth"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests whose bearer token is missing, invalid, or not
// an access token. Refresh tokens only ever travel to /auth/refresh, so a
// refresh token presented here is treated the same as no token at all.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
