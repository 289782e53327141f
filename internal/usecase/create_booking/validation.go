package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/availability"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.InstructorID <= 0 {
		return fmt.Errorf("%w: instructorId must be positive", ErrInvalidInput)
	}

	fields := []struct {
		name  string
		value string
	}{
		{"clientName", req.ClientName},
		{"clientPhone", req.ClientPhone},
		{"clientEmail", req.ClientEmail},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
		if len(f.value) > domain.MaxClientFieldLength {
			return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, f.name, domain.MaxClientFieldLength)
		}
	}

	if _, err := mail.ParseAddress(req.ClientEmail); err != nil {
		return fmt.Errorf("%w: clientEmail is malformed", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return nil
}

// validateAgainstSchedule проверяет интервал по расписанию инструктора:
// день в окне записи и не заблокирован, длина равна длительности занятия,
// интервал целиком внутри одного активного окна рабочих часов этого дня недели.
// Начало не обязано совпадать со слотом сетки. Пересечения с бронированиями здесь не проверяются.
func validateAgainstSchedule(start, end, now time.Time, loc *time.Location, windowDays int, schedule *domain.Schedule) error {
	localStart := start.In(loc)
	day := availability.DateOnly(localStart)
	today := availability.DateOnly(now.In(loc))

	if !day.After(today) {
		return ErrInvalidDate
	}
	if day.After(today.AddDate(0, 0, windowDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, windowDays)
	}

	if availability.IsDateBlocked(day, schedule.BlockedRanges) {
		return ErrDateBlocked
	}

	duration := time.Duration(schedule.LessonDurationMinutes) * time.Minute
	if end.Sub(start) != duration {
		return fmt.Errorf("%w: lesson must last %d minutes", ErrInvalidTimeSlot, schedule.LessonDurationMinutes)
	}

	if !availability.WithinWorkingHours(schedule.WorkingHours, localStart, duration) {
		return fmt.Errorf("%w: %s %s-%s is outside working hours", ErrInvalidTimeSlot,
			day.Format(domain.DateFormat), localStart.Format("15:04"), localStart.Add(duration).Format("15:04"))
	}

	return nil
}
