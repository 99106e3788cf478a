package adaptor

import (
	"encoding/json"
	"net/http"

	"exam-seating/internal/dto/request"
	"exam-seating/internal/usecase"
	"exam-seating/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/admin/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.Register(r.Context(), &req)
	if err != nil {
		serviceError(h.log, w, err, "register admin")
		return
	}

	utils.ResponseCreated(w, "success", auth)
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if err.Error() == "invalid credentials" {
			utils.ResponseUnauthorized(w, "Invalid credentials")
			return
		}
		serviceError(h.log, w, err, "login admin")
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}
