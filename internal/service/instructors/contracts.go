package instructors

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
)

// InstructorRepository интерфейс репозитория инструкторов
type InstructorRepository interface {
	Create(ctx context.Context, instructor *domain.Instructor) (*domain.Instructor, error)
	GetByID(ctx context.Context, id int64) (*domain.Instructor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Instructor, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	UpdateSubscriptionStatus(ctx context.Context, id int64, status domain.SubscriptionStatus) (*domain.Instructor, error)
	ExpireTrials(ctx context.Context, now time.Time) (int64, error)
}

// LessonSettingsRepository интерфейс для сохранения настроек занятия
type LessonSettingsRepository interface {
	UpsertLessonDuration(ctx context.Context, instructorID int64, durationMinutes int) error
}

// TokenIssuer выпускает сессионные токены
type TokenIssuer interface {
	Issue(instructorID int64, email string) (string, error)
	TTL() time.Duration
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
