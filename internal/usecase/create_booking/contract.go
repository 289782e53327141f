package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
)

// InstructorRepository интерфейс репозитория инструкторов
type InstructorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Instructor, error)
	// LockForBooking блокирует строку инструктора до конца транзакции
	LockForBooking(ctx context.Context, id int64) (*domain.Instructor, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetWorkingHours(ctx context.Context, instructorID int64) ([]domain.WorkingHourRule, error)
	GetBlockedRanges(ctx context.Context, instructorID int64) ([]domain.BlockedRange, error)
	GetLessonDuration(ctx context.Context, instructorID int64) (int, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ConflictChecker проверка пересечения с существующими бронированиями
type ConflictChecker interface {
	HasConflict(ctx context.Context, instructorID int64, start, end time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики бронирований
type Metrics interface {
	IncBookingCreated()
	IncBookingConflict()
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
