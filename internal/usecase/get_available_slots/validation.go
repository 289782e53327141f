package get_available_slots

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Slug) == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date is malformed", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что день попадает в окно записи (завтра .. сегодня+windowDays)
func validateDate(day, today time.Time, windowDays int) error {
	if !day.After(today) {
		return ErrInvalidDate
	}

	maxDate := today.AddDate(0, 0, windowDays)
	if day.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, windowDays)
	}

	return nil
}
