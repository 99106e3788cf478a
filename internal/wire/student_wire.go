package wire

import (
	"exam-seating/internal/adaptor"
	"exam-seating/pkg/middleware"
	"exam-seating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStudent(
	r chi.Router,
	studentHandler *adaptor.StudentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.JWT, log))

		// POST /api/upload-students - Upload a CSV/XLSX roster
		r.Post("/api/upload-students", studentHandler.Upload)

		// GET /api/branches - Distinct branches, optionally per year
		r.Get("/api/branches", studentHandler.Branches)

		// GET /api/students - List students, filterable by branch/year/status
		r.Get("/api/students", studentHandler.List)

		// PATCH /api/students/approve-all - Approve every pending student
		r.Patch("/api/students/approve-all", studentHandler.ApproveAll)

		// PATCH /api/students/{id}/approve - Approve one student
		r.Patch("/api/students/{id}/approve", studentHandler.Approve)

		// PATCH /api/students/{id}/block - Block one student
		r.Patch("/api/students/{id}/block", studentHandler.Block)
	})
}
