package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCredentials = "email и пароль обязательны"
	msgInvalidCredentials = "неверный email или пароль"
)

type Handler struct {
	service InstructorService
	cookie  handlers.SessionCookie
	logger  Logger
}

func NewHandler(service InstructorService, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
// Body: {"email": "...", "password": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, instructors.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, instructors.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed to login: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.cookie.Set(w, result.Token, result.ExpiresAt)
	handlers.RespondJSON(w, http.StatusOK, result)
}
