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

type SeatingHandler struct {
	service usecase.SeatingService
	log     *zap.Logger
}

func NewSeatingHandler(service usecase.SeatingService, log *zap.Logger) *SeatingHandler {
	return &SeatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "seating")),
	}
}

// Generate handles POST /api/generate (admin only)
func (h *SeatingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		serviceError(h.log, w, err, "generate seating")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// Get handles GET /api/seating/{batchId} (admin only)
func (h *SeatingHandler) Get(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchId")
	if batchID == "" {
		utils.ResponseBadRequest(w, "Batch ID is required", nil)
		return
	}

	batch, err := h.service.GetSeating(r.Context(), batchID)
	if err != nil {
		serviceError(h.log, w, err, "get seating")
		return
	}

	utils.ResponseSuccess(w, "success", batch)
}

// DownloadPDF handles GET /api/seating/{batchId}/pdf (admin only). An optional
// room query parameter narrows the document to one room.
func (h *SeatingHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchId")
	if batchID == "" {
		utils.ResponseBadRequest(w, "Batch ID is required", nil)
		return
	}

	pdf, err := h.service.BuildPDF(r.Context(), batchID, r.URL.Query().Get("room"))
	if err != nil {
		serviceError(h.log, w, err, "build seating pdf")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="seating-plan-`+batchID+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// Email handles POST /api/seating/{batchId}/email (admin only)
func (h *SeatingHandler) Email(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchId")
	if batchID == "" {
		utils.ResponseBadRequest(w, "Batch ID is required", nil)
		return
	}

	var req request.EmailSeatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.EmailSeating(r.Context(), batchID, &req); err != nil {
		serviceError(h.log, w, err, "email seating plan")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
