package add_blocked_range

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

// Handle POST /api/v1/me/blocked-ranges
// Body: {"startDate": "2026-12-24", "endDate": "2026-12-26", "reason": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, ok := middleware.GetInstructorID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.AddBlockedRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /me/blocked-ranges - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.InstructorID = instructorID

	result, err := h.service.AddBlockedRange(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, schedule.ErrInvalidInput))

		default:
			h.logger.Error("POST /me/blocked-ranges - Failed to add range: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /me/blocked-ranges - Range added: instructor_id=%d, range_id=%d", instructorID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
