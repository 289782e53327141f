package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-InstructorScheduler/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInstructorNotFound   = "инструктор не найден"
	msgInstructorInactive   = "инструктор сейчас не принимает записи"
	msgDateNotBookable      = "запись возможна только начиная с завтрашнего дня"
	msgDateTooFar           = "дата слишком далеко в будущем"
	msgInvalidRequestParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/instructors/{slug}/availability
// Query params: date (опционально, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	useCaseReq, err := ToUseCaseRequest(slug, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /instructors/{slug}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInstructorNotFound):
			h.logger.Warn("GET /instructors/{slug}/availability - Instructor not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgInstructorNotFound)

		case errors.Is(err, getAvailableSlots.ErrInstructorInactive):
			h.logger.Warn("GET /instructors/{slug}/availability - Instructor inactive: slug=%s", slug)
			handlers.RespondForbidden(w, msgInstructorInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestParams)

		default:
			h.logger.Error("GET /instructors/{slug}/availability - Failed to get availability: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /instructors/{slug}/availability - Availability retrieved: slug=%s, dates=%d, slots=%d",
		slug, len(result.Dates), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
