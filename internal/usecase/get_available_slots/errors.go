package get_available_slots

import "errors"

var (
	// ErrInstructorNotFound возвращается, когда инструктор с таким slug не найден
	ErrInstructorNotFound = errors.New("get_available_slots: instructor not found")

	// ErrInstructorInactive возвращается, когда подписка инструктора неактивна
	ErrInstructorInactive = errors.New("get_available_slots: instructor is not accepting bookings")

	// ErrInvalidDate возвращается для сегодняшней или прошедшей даты
	ErrInvalidDate = errors.New("get_available_slots: date must be after today")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна записи
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
