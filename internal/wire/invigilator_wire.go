package wire

import (
	"exam-seating/internal/adaptor"
	"exam-seating/pkg/middleware"
	"exam-seating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireInvigilator(
	r chi.Router,
	invigilatorHandler *adaptor.InvigilatorHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/invigilators", func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.JWT, log))

		// GET /api/invigilators - List active invigilators
		r.Get("/", invigilatorHandler.List)

		// POST /api/invigilators - Register an invigilator
		r.Post("/", invigilatorHandler.Create)

		// DELETE /api/invigilators/{id} - Deactivate an invigilator
		r.Delete("/{id}", invigilatorHandler.Delete)
	})
}
