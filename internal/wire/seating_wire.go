package wire

import (
	"exam-seating/internal/adaptor"
	"exam-seating/pkg/middleware"
	"exam-seating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSeating(
	r chi.Router,
	seatingHandler *adaptor.SeatingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.JWT, log))

		// POST /api/generate - Run a seating batch
		r.Post("/api/generate", seatingHandler.Generate)

		r.Route("/api/seating", func(r chi.Router) {
			// GET /api/seating/{batchId} - Full layout of a batch, empty seats included
			r.Get("/{batchId}", seatingHandler.Get)

			// GET /api/seating/{batchId}/pdf - Download the plan as PDF
			r.Get("/{batchId}/pdf", seatingHandler.DownloadPDF)

			// POST /api/seating/{batchId}/email - Email the plan PDF
			r.Post("/{batchId}/email", seatingHandler.Email)
		})
	})
}
