package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-InstructorScheduler/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgSlotNotAvailable   = "выбранное время уже занято"
	msgInstructorNotFound = "инструктор не найден"
	msgInstructorInactive = "инструктор сейчас не принимает записи"
	msgInvalidBookingDate = "запись возможна только начиная с завтрашнего дня"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgDateBlocked        = "инструктор не работает в выбранный день"
	msgInvalidTimeSlot    = "выбранное время не совпадает со свободным слотом расписания"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: instructor_id=%d, start=%s", req.InstructorID, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings - Date blocked: instructor_id=%d, start=%s", req.InstructorID, req.StartTime)
			handlers.RespondBadRequest(w, msgDateBlocked)

		case errors.Is(err, createBooking.ErrInstructorNotFound):
			h.logger.Warn("POST /bookings - Instructor not found: instructor_id=%d", req.InstructorID)
			handlers.RespondNotFound(w, msgInstructorNotFound)

		case errors.Is(err, createBooking.ErrInstructorInactive):
			h.logger.Warn("POST /bookings - Instructor inactive: instructor_id=%d", req.InstructorID)
			handlers.RespondForbidden(w, msgInstructorInactive)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: instructor_id=%d, start=%s, end=%s",
				req.InstructorID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, createBooking.ErrInvalidInput))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: instructor_id=%d, error=%v", req.InstructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, instructor_id=%d",
		result.ID, result.InstructorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
