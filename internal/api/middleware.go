package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/oriontour/admin-api/internal/auth"
)

// AuthMiddleware guards the admin surface with a bearer session token
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			h.writeError(w, http.StatusUnauthorized, "authorization token required")
			return
		}

		if err := h.auth.Verify(token); err != nil {
			if errors.Is(err, auth.ErrForbidden) {
				h.writeError(w, http.StatusForbidden, err.Error())
				return
			}
			h.writeError(w, http.StatusUnauthorized, err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
