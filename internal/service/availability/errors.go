package availability

import "errors"

var (
	// ErrInvalidInterval возвращается, если начало интервала не раньше конца
	ErrInvalidInterval = errors.New("availability: interval start must be before end")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("availability: internal error")
)
