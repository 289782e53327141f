package get_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InstructorScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgNotFound     = "инструктор не найден"
)

type Handler struct {
	service InstructorService
	logger  Logger
}

func NewHandler(service InstructorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, ok := middleware.GetInstructorID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetProfile(r.Context(), instructorID)
	if err != nil {
		switch {
		case errors.Is(err, instructors.ErrInstructorNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /me - Failed to get profile: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
