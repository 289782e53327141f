package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailTaken         = "этот email уже зарегистрирован"
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

// Handle POST /api/v1/auth/register
// Body: {"name": "...", "email": "...", "password": "...", "phone": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, instructors.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, instructors.ErrInvalidInput))

		case errors.Is(err, instructors.ErrEmailTaken):
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /auth/register - Failed to register: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.cookie.Set(w, result.Token, result.ExpiresAt)

	h.logger.Info("POST /auth/register - Instructor registered: instructor_id=%d, slug=%s",
		result.Instructor.ID, result.Instructor.Slug)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
