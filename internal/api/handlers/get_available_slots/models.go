package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-InstructorScheduler/internal/usecase/get_available_slots"
)

// InstructorInfo общая часть ответов доступности
type InstructorInfo struct {
	InstructorID          int64  `json:"instructorId"`
	InstructorName        string `json:"instructorName"`
	LessonDurationMinutes int    `json:"lessonDurationMinutes"`
}

// DatesResponse HTTP response model без параметра date
type DatesResponse struct {
	InstructorInfo
	Dates []AvailableDate `json:"dates"`
}

// SlotsResponse HTTP response model для конкретного дня
type SlotsResponse struct {
	InstructorInfo
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableDate открытый для записи день
type AvailableDate struct {
	Date       string `json:"date"`
	SlotsCount int    `json:"slotsCount"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string    `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в DatesResponse или SlotsResponse
func FromUseCaseResponse(resp *getAvailableSlots.Response) interface{} {
	info := InstructorInfo{
		InstructorID:          resp.InstructorID,
		InstructorName:        resp.InstructorName,
		LessonDurationMinutes: resp.LessonDurationMinutes,
	}

	if resp.Date == nil {
		dates := make([]AvailableDate, len(resp.Dates))
		for i, d := range resp.Dates {
			dates[i] = AvailableDate{
				Date:       d.Date.Format(domain.DateFormat),
				SlotsCount: d.SlotsCount,
			}
		}
		return &DatesResponse{InstructorInfo: info, Dates: dates}
	}

	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Start:           slot.Start,
			End:             slot.End,
		}
	}
	return &SlotsResponse{
		InstructorInfo: info,
		Date:           resp.Date.Format(domain.DateFormat),
		Slots:          slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(slug, dateStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{Slug: slug}
	if dateStr == "" {
		return req, nil
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	req.Date = &date
	return req, nil
}
