package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// userIDFromRequest pulls the authenticated user's ID out of the verified
// token. The auth middleware guarantees a token is present on these routes.
func userIDFromRequest(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
