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

type ClassroomHandler struct {
	service usecase.ClassroomService
	log     *zap.Logger
}

func NewClassroomHandler(service usecase.ClassroomService, log *zap.Logger) *ClassroomHandler {
	return &ClassroomHandler{
		service: service,
		log:     log.With(zap.String("handler", "classroom")),
	}
}

// List handles GET /api/classrooms (admin only)
func (h *ClassroomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.List(r.Context())
	if err != nil {
		serviceError(h.log, w, err, "list classrooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// Create handles POST /api/classrooms (admin only). Re-posting an existing
// room number updates it in place.
func (h *ClassroomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateClassroomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.Create(r.Context(), &req)
	if err != nil {
		serviceError(h.log, w, err, "create classroom")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// Delete handles DELETE /api/classrooms/{roomNo} (admin only)
func (h *ClassroomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	roomNo := chi.URLParam(r, "roomNo")
	if roomNo == "" {
		utils.ResponseBadRequest(w, "Room number is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), roomNo); err != nil {
		serviceError(h.log, w, err, "delete classroom")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
