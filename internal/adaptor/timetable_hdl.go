package adaptor

import (
	"encoding/json"
	"net/http"

	"exam-seating/internal/dto/request"
	"exam-seating/internal/usecase"
	"exam-seating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TimetableHandler struct {
	service usecase.TimetableService
	log     *zap.Logger
}

func NewTimetableHandler(service usecase.TimetableService, log *zap.Logger) *TimetableHandler {
	return &TimetableHandler{
		service: service,
		log:     log.With(zap.String("handler", "timetable")),
	}
}

// List handles GET /api/timetables (admin only)
func (h *TimetableHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	timetables, err := h.service.List(r.Context(), query.Get("department"), query.Get("year"), query.Get("exam_type"))
	if err != nil {
		serviceError(h.log, w, err, "list timetables")
		return
	}

	utils.ResponseSuccess(w, "success", timetables)
}

// Create handles POST /api/timetables (admin only)
func (h *TimetableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.TimetableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tt, err := h.service.Create(r.Context(), &req)
	if err != nil {
		serviceError(h.log, w, err, "create timetable entry")
		return
	}

	utils.ResponseCreated(w, "success", tt)
}

// Update handles PUT /api/timetables/{id} (admin only)
func (h *TimetableHandler) Update(w http.ResponseWriter, r *http.Request) {
	ttID := chi.URLParam(r, "id")
	if ttID == "" {
		utils.ResponseBadRequest(w, "Timetable ID is required", nil)
		return
	}

	var req request.TimetableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tt, err := h.service.Update(r.Context(), ttID, &req)
	if err != nil {
		serviceError(h.log, w, err, "update timetable entry")
		return
	}

	utils.ResponseSuccess(w, "success", tt)
}

// Delete handles DELETE /api/timetables/{id} (admin only)
func (h *TimetableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ttID := chi.URLParam(r, "id")
	if ttID == "" {
		utils.ResponseBadRequest(w, "Timetable ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), ttID); err != nil {
		serviceError(h.log, w, err, "delete timetable entry")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
