package schedule

import "errors"

var (
	// ErrBlockedRangeNotFound возвращается, когда период блокировки не найден
	ErrBlockedRangeNotFound = errors.New("schedule: blocked range not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
