package wire

import (
	"exam-seating/internal/adaptor"
	"exam-seating/pkg/middleware"
	"exam-seating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTimetable(
	r chi.Router,
	timetableHandler *adaptor.TimetableHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/timetables", func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.JWT, log))

		// GET /api/timetables - List entries, filterable by department/year/exam type
		r.Get("/", timetableHandler.List)

		// POST /api/timetables - Create an entry
		r.Post("/", timetableHandler.Create)

		// PUT /api/timetables/{id} - Update an entry
		r.Put("/{id}", timetableHandler.Update)

		// DELETE /api/timetables/{id} - Delete an entry
		r.Delete("/{id}", timetableHandler.Delete)
	})
}
