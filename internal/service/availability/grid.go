package availability

import (
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/types"
)

// GenerateSlots возвращает начала слотов фиксированной длины для дня недели
//
// Каждое активное правило этого дня проходится независимо: от начала окна с шагом
// durationMinutes, слот выдается, пока slotStart+duration <= конец окна.
// Неполный хвостовой слот отбрасывается (окно 08:00-09:30 при 60 минутах дает только 08:00).
// Внутри правила слоты идут по возрастанию, между правилами порядок входного списка.
func GenerateSlots(rules []domain.WorkingHourRule, day time.Weekday, durationMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if durationMinutes <= 0 {
		return slots
	}

	for _, rule := range rules {
		if !rule.AppliesTo(day) {
			continue
		}

		start := rule.StartTime.Minutes()
		end := rule.EndTime.Minutes()
		if start < 0 || end < 0 {
			continue
		}

		for current := start; current+durationMinutes <= end; current += durationMinutes {
			slot, err := types.NewTimeStringFromMinutes(current)
			if err != nil {
				break
			}
			slots = append(slots, slot)
		}
	}

	return slots
}

// HasWorkingHours возвращает true, если на день недели есть хотя бы одно активное правило
func HasWorkingHours(rules []domain.WorkingHourRule, day time.Weekday) bool {
	for _, rule := range rules {
		if rule.AppliesTo(day) {
			return true
		}
	}
	return false
}

// WithinWorkingHours проверяет, что интервал [start, start+length) целиком лежит
// в одном активном окне дня недели start. Время суток берется по часам start,
// поэтому start должен быть уже переведен в часовой пояс сервиса.
// Совпадение с началом слота сетки не требуется.
func WithinWorkingHours(rules []domain.WorkingHourRule, start time.Time, length time.Duration) bool {
	if length <= 0 {
		return false
	}

	hour, minute, second := start.Clock()
	from := time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(start.Nanosecond())
	to := from + length

	for _, rule := range rules {
		if !rule.AppliesTo(start.Weekday()) {
			continue
		}

		ruleStart := rule.StartTime.Minutes()
		ruleEnd := rule.EndTime.Minutes()
		if ruleStart < 0 || ruleEnd < 0 {
			continue
		}

		if from >= time.Duration(ruleStart)*time.Minute && to <= time.Duration(ruleEnd)*time.Minute {
			return true
		}
	}
	return false
}
