package delete_blocked_range

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InstructorScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/schedule"
)

const (
	msgUnauthorized   = "требуется авторизация"
	msgInvalidRangeID = "некорректный ID периода"
	msgNotFound       = "период не найден"
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

// Handle DELETE /api/v1/me/blocked-ranges/{rangeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, ok := middleware.GetInstructorID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	rangeID, err := handlers.PathID(r, "rangeId")
	if err != nil {
		h.logger.Warn("DELETE /me/blocked-ranges/{id} - Invalid range ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRangeID)
		return
	}

	if err := h.service.DeleteBlockedRange(r.Context(), instructorID, rangeID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockedRangeNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /me/blocked-ranges/{id} - Failed to delete range: range_id=%d, error=%v", rangeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /me/blocked-ranges/{id} - Range deleted: instructor_id=%d, range_id=%d", instructorID, rangeID)
	handlers.RespondNoContent(w)
}
