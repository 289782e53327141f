package domain

import (
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/pkg/types"
)

// AvailableSlot represents a lesson start that can be booked
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Start           time.Time
	End             time.Time
}

// AvailableDate represents a day offered on the booking page
type AvailableDate struct {
	Date       time.Time
	SlotsCount int
}
