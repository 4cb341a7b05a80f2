package handler

import (
	"fmt"
	"net/http"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/service"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

// AuthHandler serves registration and login. Registration is two calls:
// /auth/register validates format and uniqueness, /auth/pin creates the
// user and returns the session.
type AuthHandler struct {
	authService service.AuthServiceInterface
	logger      *logger.Logger
}

func NewAuthHandler(authService service.AuthServiceInterface, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger.WithComponent("auth_handler"),
	}
}

type registerRequest struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role models.Role `json:"role"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for register", "error", err)
		writeErrorResponse(w, h.logger, fmt.Errorf("invalid request body: %w", apperrors.ErrValidation))
		return
	}

	pending, err := h.authService.Register(req.ID, req.Name, req.Role)
	if err != nil {
		h.logger.Warn("Registration failed", "user_id", req.ID, "error", err)
		writeErrorResponse(w, h.logger, err)
		return
	}
	writeJSONResponse(w, h.logger, http.StatusOK, pending)
}

type setPinRequest struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role models.Role `json:"role"`
	PIN  string      `json:"pin"`
}

// SetPin handles POST /auth/pin
func (h *AuthHandler) SetPin(w http.ResponseWriter, r *http.Request) {
	var req setPinRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for set pin", "error", err)
		writeErrorResponse(w, h.logger, fmt.Errorf("invalid request body: %w", apperrors.ErrValidation))
		return
	}

	// Re-validate the pending registration; the two-step flow is
	// stateless on the server side.
	pending, err := h.authService.Register(req.ID, req.Name, req.Role)
	if err != nil {
		h.logger.Warn("Pending registration invalid at pin step", "user_id", req.ID, "error", err)
		writeErrorResponse(w, h.logger, err)
		return
	}

	session, err := h.authService.SetPin(pending, req.PIN)
	if err != nil {
		h.logger.Warn("Set pin failed", "user_id", req.ID, "error", err)
		writeErrorResponse(w, h.logger, err)
		return
	}
	writeJSONResponse(w, h.logger, http.StatusCreated, session)
}

type loginRequest struct {
	ID   string      `json:"id"`
	Role models.Role `json:"role"`
	PIN  string      `json:"pin"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for login", "error", err)
		writeErrorResponse(w, h.logger, fmt.Errorf("invalid request body: %w", apperrors.ErrValidation))
		return
	}

	session, err := h.authService.Login(req.ID, req.Role, req.PIN)
	if err != nil {
		h.logger.Warn("Login failed", "user_id", req.ID, "error", err)
		writeErrorResponse(w, h.logger, err)
		return
	}
	writeJSONResponse(w, h.logger, http.StatusOK, session)
}
