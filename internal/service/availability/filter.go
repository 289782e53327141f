package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
)

// AvailableDates возвращает дни, предлагаемые для записи
// Перебираются windowDays дней, начиная с завтрашнего (в часовом поясе today).
// День предлагается, если на его день недели есть активное правило и
// он не попадает ни в один заблокированный период.
func AvailableDates(today time.Time, windowDays int, rules []domain.WorkingHourRule, blocked []domain.BlockedRange) []time.Time {
	dates := make([]time.Time, 0)
	start := DateOnly(today)

	for i := 1; i <= windowDays; i++ {
		date := start.AddDate(0, 0, i)
		if IsDateOffered(date, rules, blocked) {
			dates = append(dates, date)
		}
	}

	return dates
}

// IsDateOffered проверяет, что в этот день работают и он не заблокирован
func IsDateOffered(date time.Time, rules []domain.WorkingHourRule, blocked []domain.BlockedRange) bool {
	return HasWorkingHours(rules, date.Weekday()) && !IsDateBlocked(date, blocked)
}

// IsDateBlocked проверяет попадание дня в заблокированный период
// Сравнение по календарным дням в часовом поясе date, обе границы включительно
func IsDateBlocked(date time.Time, blocked []domain.BlockedRange) bool {
	day := DateOnly(date)
	loc := date.Location()

	for _, b := range blocked {
		from := DateOnly(b.StartDate.In(loc))
		to := DateOnly(b.EndDate.In(loc))
		if !day.Before(from) && !day.After(to) {
			return true
		}
	}
	return false
}

// AvailableSlots возвращает свободные слоты на день
// Кандидаты строятся GenerateSlots, затем исключаются слоты, пересекающиеся
// (полуоткрытые интервалы) с неотмененными бронированиями. Результат отсортирован
// по времени начала, одинаковые начала от пересекающихся правил схлопываются.
// Для заблокированного дня результат пустой.
func AvailableSlots(
	date time.Time,
	rules []domain.WorkingHourRule,
	blocked []domain.BlockedRange,
	bookings []*domain.Booking,
	durationMinutes int,
) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, 0)

	day := DateOnly(date)
	if IsDateBlocked(day, blocked) {
		return result
	}

	duration := time.Duration(durationMinutes) * time.Minute
	for _, startTime := range GenerateSlots(rules, day.Weekday(), durationMinutes) {
		start := startTime.On(day, day.Location())
		candidate := domain.Interval{Start: start, End: start.Add(duration)}

		if HasConflict(bookings, candidate) {
			continue
		}

		result = append(result, domain.AvailableSlot{
			StartTime:       startTime,
			DurationMinutes: durationMinutes,
			Start:           candidate.Start,
			End:             candidate.End,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Start.Before(result[j].Start)
	})

	return dedupe(result)
}

// DateOnly обнуляет время, сохраняя часовой пояс
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// dedupe оставляет один слот на время начала, вход отсортирован
func dedupe(slots []domain.AvailableSlot) []domain.AvailableSlot {
	if len(slots) < 2 {
		return slots
	}
	out := slots[:1]
	for _, s := range slots[1:] {
		if !s.Start.Equal(out[len(out)-1].Start) {
			out = append(out, s)
		}
	}
	return out
}
