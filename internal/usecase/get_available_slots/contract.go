package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
)

// InstructorRepository интерфейс репозитория инструкторов
type InstructorRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Instructor, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetWorkingHours(ctx context.Context, instructorID int64) ([]domain.WorkingHourRule, error)
	GetBlockedRanges(ctx context.Context, instructorID int64) ([]domain.BlockedRange, error)
	GetLessonDuration(ctx context.Context, instructorID int64) (int, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetOverlapping получает неотмененные бронирования инструктора, пересекающиеся с интервалом
	GetOverlapping(ctx context.Context, instructorID int64, interval domain.Interval) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
