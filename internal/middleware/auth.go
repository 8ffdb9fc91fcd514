package middleware

import (
	"net/http"
	"strings"

	"github.com/hweilin/memberhub/internal/services/auth"
)

// RequireAuth guards a route group: it validates the bearer token and
// confirms the token subject still resolves to a real admin before the
// handler runs.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := ""

		authHeader := r.Header.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			m.apiError(w, r, "Unauthorized: No token provided", http.StatusUnauthorized)
			return
		}

		claims, err := m.TokenSvc.Validate(tokenString)
		if err != nil {
			m.apiError(w, r, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		adminID, err := claims.AdminID()
		if err != nil {
			m.apiError(w, r, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		admin, err := m.Auth.ValidateUser(r.Context(), adminID)
		if err != nil {
			m.apiError(w, r, "Unauthorized: Invalid user", http.StatusUnauthorized)
			return
		}

		adminCtx := auth.AdminContextValue{
			ID:       admin.ID,
			Username: admin.Username,
		}

		next.ServeHTTP(w, r.WithContext(auth.NewContextWithAdmin(r.Context(), &adminCtx)))
	})
}
