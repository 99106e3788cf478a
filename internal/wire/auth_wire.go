package wire

import (
	"exam-seating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================

	// POST /api/admin/register - Register an admin account
	r.Post("/api/admin/register", authHandler.Register)

	// POST /api/admin/login - Exchange credentials for a JWT
	r.Post("/api/admin/login", authHandler.Login)
}
