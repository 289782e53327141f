package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому инструктору
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrSlotNotAvailable возвращается при возврате отмененного бронирования на занятое время
	ErrSlotNotAvailable = errors.New("bookings: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
