package wire

import (
	"exam-seating/internal/adaptor"
	"exam-seating/pkg/middleware"
	"exam-seating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireClassroom(
	r chi.Router,
	classroomHandler *adaptor.ClassroomHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/classrooms", func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.JWT, log))

		// GET /api/classrooms - List active classrooms
		r.Get("/", classroomHandler.List)

		// POST /api/classrooms - Create or update a classroom
		r.Post("/", classroomHandler.Create)

		// DELETE /api/classrooms/{roomNo} - Deactivate a classroom
		r.Delete("/{roomNo}", classroomHandler.Delete)
	})
}
