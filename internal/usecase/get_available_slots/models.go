package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/pkg/types"
)

// Request модель запроса доступности
// Без Date возвращается список открытых дней окна, с Date - свободные слоты на этот день
type Request struct {
	Slug string     // Публичный slug инструктора
	Date *time.Time // День (используются только год, месяц и число)
}

// Response модель ответа
type Response struct {
	InstructorID          int64
	InstructorName        string
	LessonDurationMinutes int

	Dates []Date // Заполнено, если в запросе не было даты

	Date  *time.Time // Заполнено вместе со Slots
	Slots []Slot
}

// Date открытый для записи день
type Date struct {
	Date       time.Time
	SlotsCount int
}

// Slot свободный слот
type Slot struct {
	StartTime       types.TimeString // Время начала ("10:00")
	DurationMinutes int
	Start           time.Time
	End             time.Time
}
