package adaptor

import (
	"net/http"

	"exam-seating/internal/usecase"
	"exam-seating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxUploadSize caps roster uploads at 8 MiB.
const maxUploadSize = 8 << 20

type StudentHandler struct {
	service usecase.StudentService
	log     *zap.Logger
}

func NewStudentHandler(service usecase.StudentService, log *zap.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		log:     log.With(zap.String("handler", "student")),
	}
}

// Upload handles POST /api/upload-students (admin only). Expects a multipart
// form with a single "file" field holding a CSV or XLSX roster.
func (h *StudentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "Roster file is required", nil)
		return
	}
	defer file.Close()

	result, err := h.service.Upload(r.Context(), header.Filename, file)
	if err != nil {
		serviceError(h.log, w, err, "upload roster")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// List handles GET /api/students (admin only)
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	students, err := h.service.List(r.Context(), query.Get("branch"), query.Get("year"), query.Get("status"))
	if err != nil {
		serviceError(h.log, w, err, "list students")
		return
	}

	utils.ResponseSuccess(w, "success", students)
}

// Branches handles GET /api/branches (admin only)
func (h *StudentHandler) Branches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.service.Branches(r.Context(), r.URL.Query().Get("year"))
	if err != nil {
		serviceError(h.log, w, err, "list branches")
		return
	}

	utils.ResponseSuccess(w, "success", branches)
}

// Approve handles PATCH /api/students/{id}/approve (admin only)
func (h *StudentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")
	if studentID == "" {
		utils.ResponseBadRequest(w, "Student ID is required", nil)
		return
	}

	if err := h.service.Approve(r.Context(), studentID); err != nil {
		serviceError(h.log, w, err, "approve student")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Block handles PATCH /api/students/{id}/block (admin only)
func (h *StudentHandler) Block(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")
	if studentID == "" {
		utils.ResponseBadRequest(w, "Student ID is required", nil)
		return
	}

	if err := h.service.Block(r.Context(), studentID); err != nil {
		serviceError(h.log, w, err, "block student")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ApproveAll handles PATCH /api/students/approve-all (admin only)
func (h *StudentHandler) ApproveAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.ApproveAll(r.Context())
	if err != nil {
		serviceError(h.log, w, err, "approve all students")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]int64{"approved": n})
}
