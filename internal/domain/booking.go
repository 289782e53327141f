package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reserved lesson interval of an instructor
type Booking struct {
	ID           int64
	InstructorID int64

	ClientName  string
	ClientPhone string
	ClientEmail string

	StartTime time.Time
	EndTime   time.Time
	Status    BookingStatus

	Notes              *string
	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the booked interval [StartTime, EndTime)
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// IsActive returns true if the booking still occupies its interval
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BelongsTo returns true if the booking is owned by the instructor
func (b *Booking) BelongsTo(instructorID int64) bool {
	return b.InstructorID == instructorID
}

// ParseBookingStatus validates a raw status value
func ParseBookingStatus(raw string) (BookingStatus, bool) {
	status := BookingStatus(raw)
	for _, valid := range BookingStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}

// InstructorBookingsFilter фильтр для получения бронирований инструктора
type InstructorBookingsFilter struct {
	InstructorID     int64          // Обязательный параметр
	From             *time.Time     // Начало периода по start_time (включительно)
	To               *time.Time     // Конец периода по start_time (не включительно)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}
