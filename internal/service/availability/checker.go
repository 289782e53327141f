package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
)

// BookingRepository источник бронирований для проверки конфликтов
type BookingRepository interface {
	// GetOverlapping возвращает неотмененные бронирования инструктора, пересекающиеся с интервалом
	GetOverlapping(ctx context.Context, instructorID int64, interval domain.Interval) ([]*domain.Booking, error)
}

// Checker проверка пересечений при записи
// В отличие от фильтра слотов, это авторитетная проверка: её результат решает,
// будет ли создано бронирование. Вызывать внутри транзакции, где строка
// инструктора уже заблокирована, иначе результат может устареть до вставки.
type Checker struct {
	bookingRepo BookingRepository
}

// NewChecker создает проверку конфликтов
func NewChecker(bookingRepo BookingRepository) *Checker {
	return &Checker{bookingRepo: bookingRepo}
}

// HasConflict возвращает true, если интервал [start, end) пересекается с активным бронированием инструктора
func (c *Checker) HasConflict(ctx context.Context, instructorID int64, start, end time.Time) (bool, error) {
	proposed := domain.Interval{Start: start, End: end}
	if !proposed.IsValid() {
		return false, ErrInvalidInterval
	}

	candidates, err := c.bookingRepo.GetOverlapping(ctx, instructorID, proposed)
	if err != nil {
		return false, fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
	}

	return HasConflict(candidates, proposed), nil
}

// HasConflict проверяет пересечение интервала с активными бронированиями из списка
func HasConflict(bookings []*domain.Booking, proposed domain.Interval) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.Interval().Overlaps(proposed) {
			return true
		}
	}
	return false
}
