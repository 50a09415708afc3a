package adaptor

import (
	"net/http"

	"train-booking/internal/dto/request"
	"train-booking/internal/usecase"
	"train-booking/pkg/utils"

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

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "Registration successful", resp)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// Logout handles POST /api/logout (protected)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// token sudah divalidasi AuthSession
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok || token == "" {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}
