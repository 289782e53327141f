package schedule

import (
	"context"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetWorkingHours(ctx context.Context, instructorID int64) ([]domain.WorkingHourRule, error)
	ReplaceWorkingHours(ctx context.Context, instructorID int64, rules []domain.WorkingHourRule) error
	GetBlockedRanges(ctx context.Context, instructorID int64) ([]domain.BlockedRange, error)
	CreateBlockedRange(ctx context.Context, blocked *domain.BlockedRange) (*domain.BlockedRange, error)
	DeleteBlockedRange(ctx context.Context, id, instructorID int64) error
	GetLessonDuration(ctx context.Context, instructorID int64) (int, error)
	UpsertLessonDuration(ctx context.Context, instructorID int64, durationMinutes int) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
