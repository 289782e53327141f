package create_booking

import "errors"

var (
	// ErrInstructorNotFound возвращается, когда инструктор не найден
	ErrInstructorNotFound = errors.New("create_booking: instructor not found")

	// ErrInstructorInactive возвращается, когда подписка инструктора неактивна
	ErrInstructorInactive = errors.New("create_booking: instructor is not accepting bookings")

	// ErrInvalidDate возвращается, когда занятие начинается не позже сегодняшнего дня
	ErrInvalidDate = errors.New("create_booking: booking date must be after today")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна записи
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrDateBlocked возвращается, когда день попадает в заблокированный период
	ErrDateBlocked = errors.New("create_booking: date is blocked by the instructor")

	// ErrInvalidTimeSlot возвращается, когда интервал выходит за рабочие часы дня
	// или его длина не равна длительности занятия
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
