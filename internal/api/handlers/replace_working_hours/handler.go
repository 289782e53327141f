package replace_working_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InstructorScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/schedule"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/schedule/models"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
)

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

// Handle PUT /api/v1/me/working-hours
// Body: {"rules": [{"dayOfWeek": 1, "startTime": "08:00", "endTime": "12:00", "isActive": true}]}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, ok := middleware.GetInstructorID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.ReplaceWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /me/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.InstructorID = instructorID

	result, err := h.service.ReplaceWorkingHours(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, schedule.ErrInvalidInput))

		default:
			h.logger.Error("PUT /me/working-hours - Failed to replace rules: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /me/working-hours - Rules replaced: instructor_id=%d, count=%d", instructorID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
