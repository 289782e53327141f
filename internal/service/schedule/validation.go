package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
)

// maxRulesPerInstructor ограничение на количество правил рабочих часов
const maxRulesPerInstructor = 50

// validateRules проверяет набор правил рабочих часов
func validateRules(rules []domain.WorkingHourRule) error {
	if len(rules) > maxRulesPerInstructor {
		return fmt.Errorf("%w: at most %d working hour rules allowed", ErrInvalidInput, maxRulesPerInstructor)
	}

	for i := range rules {
		rule := &rules[i]
		if rule.DayOfWeek < time.Sunday || rule.DayOfWeek > time.Saturday {
			return fmt.Errorf("%w: rule %d: dayOfWeek must be between 0 and 6", ErrInvalidInput, i)
		}
		if err := rule.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: rule %d: startTime must be HH:MM", ErrInvalidInput, i)
		}
		if err := rule.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: rule %d: endTime must be HH:MM", ErrInvalidInput, i)
		}
		if !rule.IsValid() {
			return fmt.Errorf("%w: rule %d: startTime must be before endTime", ErrInvalidInput, i)
		}
	}

	return nil
}

// parseDay разбирает YYYY-MM-DD как полночь в часовом поясе сервиса
func parseDay(raw string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(domain.DateFormat, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return day, nil
}
