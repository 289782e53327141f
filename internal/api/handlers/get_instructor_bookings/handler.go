package get_instructor_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InstructorScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/bookings"
)

const (
	msgUnauthorized  = "требуется авторизация"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service  BookingService
	location *time.Location
	logger   Logger
}

func NewHandler(service BookingService, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/me/bookings
// Query params: from, to (YYYY-MM-DD), status, includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, ok := middleware.GetInstructorID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		instructorID,
		query.Get("from"),
		query.Get("to"),
		query.Get("status"),
		query.Get("includeCancelled"),
		h.location,
	)
	if err != nil {
		h.logger.Warn("GET /me/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetInstructorBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, bookings.ErrInvalidInput))

		default:
			h.logger.Error("GET /me/bookings - Failed to get bookings: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /me/bookings - Bookings retrieved successfully: instructor_id=%d, count=%d",
		instructorID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
