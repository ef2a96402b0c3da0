package auth

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth"
)

// CallerID resolves the authenticated user id from the verified JWT claims.
// Upstream jwtauth middleware has already rejected unverifiable tokens; a
// token without a usable user_id claim is a client input problem.
func CallerID(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, err
	}

	switch v := claims["user_id"].(type) {
	case float64:
		if v <= 0 {
			return 0, fmt.Errorf("invalid user_id claim")
		}
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, fmt.Errorf("missing user_id claim")
	}
}

// Role returns the role claim, defaulting to "user".
func Role(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "user"
	}

	if role, ok := claims["role"].(string); ok && role != "" {
		return role
	}
	return "user"
}

// Name returns the display name claim when present.
func Name(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}

	if nama, ok := claims["nama"].(string); ok {
		return nama
	}
	return ""
}
