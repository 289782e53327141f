package domain

import "time"

// Interval полуоткрытый интервал времени [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid возвращает true, если Start строго раньше End
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Duration длительность интервала
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps проверяет пересечение полуоткрытых интервалов: a1 < b2 && b1 < a2
// Интервалы, которые только соприкасаются границами (одно занятие заканчивается,
// когда начинается другое), не пересекаются.
// Это единственное правило пересечения в сервисе: его используют и фильтр
// свободных слотов, и проверка конфликтов при записи, и SQL-предикат репозитория.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}
