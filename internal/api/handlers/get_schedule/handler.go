package get_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InstructorScheduler/internal/api/middleware"
)

const msgUnauthorized = "требуется авторизация"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, ok := middleware.GetInstructorID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetSchedule(r.Context(), instructorID)
	if err != nil {
		h.logger.Error("GET /me/schedule - Failed to get schedule: instructor_id=%d, error=%v", instructorID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
