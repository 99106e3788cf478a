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

type InvigilatorHandler struct {
	service usecase.InvigilatorService
	log     *zap.Logger
}

func NewInvigilatorHandler(service usecase.InvigilatorService, log *zap.Logger) *InvigilatorHandler {
	return &InvigilatorHandler{
		service: service,
		log:     log.With(zap.String("handler", "invigilator")),
	}
}

// List handles GET /api/invigilators (admin only)
func (h *InvigilatorHandler) List(w http.ResponseWriter, r *http.Request) {
	invigilators, err := h.service.List(r.Context())
	if err != nil {
		serviceError(h.log, w, err, "list invigilators")
		return
	}

	utils.ResponseSuccess(w, "success", invigilators)
}

// Create handles POST /api/invigilators (admin only)
func (h *InvigilatorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateInvigilatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	inv, err := h.service.Create(r.Context(), &req)
	if err != nil {
		serviceError(h.log, w, err, "create invigilator")
		return
	}

	utils.ResponseCreated(w, "success", inv)
}

// Delete handles DELETE /api/invigilators/{id} (admin only)
func (h *InvigilatorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	invID := chi.URLParam(r, "id")
	if invID == "" {
		utils.ResponseBadRequest(w, "Invigilator ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), invID); err != nil {
		serviceError(h.log, w, err, "delete invigilator")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
