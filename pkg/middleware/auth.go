package middleware

import (
	"net/http"
	"strings"

	"exam-seating/pkg/utils"

	"go.uber.org/zap"
)

// AdminAuth validates the Bearer JWT on protected routes and puts the admin
// email on the request context. Tokens are stateless; there is no session
// store to consult.
func AdminAuth(jwtConfig utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			email, err := utils.VerifyAdminToken(jwtConfig.Secret, parts[1])
			if err != nil {
				logger.Warn("Invalid or expired admin token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetAdminContext(r.Context(), email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
