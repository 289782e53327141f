package domain

import (
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/pkg/types"
)

// WorkingHourRule еженедельное окно приема записей
// Несколько правил на один день допустимы (например, с перерывом) и
// обрабатываются независимо друг от друга
type WorkingHourRule struct {
	ID           int64
	InstructorID int64
	DayOfWeek    time.Weekday // 0 = воскресенье
	StartTime    types.TimeString
	EndTime      types.TimeString
	IsActive     bool
}

// IsValid проверяет день недели и то, что начало строго раньше конца
func (r *WorkingHourRule) IsValid() bool {
	if r.DayOfWeek < time.Sunday || r.DayOfWeek > time.Saturday {
		return false
	}
	if r.StartTime.Validate() != nil || r.EndTime.Validate() != nil {
		return false
	}
	return r.StartTime.IsBefore(r.EndTime)
}

// AppliesTo возвращает true для активного правила этого дня недели
func (r *WorkingHourRule) AppliesTo(day time.Weekday) bool {
	return r.IsActive && r.DayOfWeek == day
}

// BlockedRange явный период без записей (отпуск и т.п.)
type BlockedRange struct {
	ID           int64
	InstructorID int64
	StartDate    time.Time
	EndDate      time.Time
	Reason       *string
}

// IsValid проверяет, что начало не позже конца
func (b *BlockedRange) IsValid() bool {
	return !b.StartDate.After(b.EndDate)
}

// LessonSettings настройки длительности занятия
type LessonSettings struct {
	InstructorID    int64
	DurationMinutes int
}

// Schedule все, что нужно для расчета доступности инструктора
type Schedule struct {
	WorkingHours          []WorkingHourRule
	BlockedRanges         []BlockedRange
	LessonDurationMinutes int
}
