package update_subscription

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors/models"
)

const (
	msgInvalidInstructorID = "некорректный ID инструктора"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidStatus       = "статус должен быть trial, active или inactive"
	msgNotFound            = "инструктор не найден"
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

// Handle PUT /api/v1/internal/instructors/{instructorId}/subscription
// Body: {"status": "trial|active|inactive"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, err := handlers.PathID(r, "instructorId")
	if err != nil {
		h.logger.Warn("PUT /internal/instructors/{id}/subscription - Invalid instructor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	var req models.UpdateSubscriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /internal/instructors/{id}/subscription - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSubscriptionStatus(r.Context(), instructorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, instructors.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, instructors.ErrInstructorNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /internal/instructors/{id}/subscription - Failed to update: instructor_id=%d, error=%v",
				instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /internal/instructors/{id}/subscription - Subscription updated: instructor_id=%d, status=%s",
		instructorID, result.SubscriptionStatus)
	handlers.RespondJSON(w, http.StatusOK, result)
}
