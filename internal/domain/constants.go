package domain

// Default configuration values
const (
	DefaultLessonDurationMinutes  = 60
	DefaultAvailabilityWindowDays = 30
	DefaultTrialDays              = 7
)

// AllowedLessonDurations допустимые длительности занятия в минутах
var AllowedLessonDurations = []int{60, 90}

// Business validation constants
const (
	MinPasswordLength           = 8
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxClientFieldLength        = 200
	MaxBlockedRangeReasonLength = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingStatuses все допустимые статусы бронирования
var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// IsAllowedLessonDuration проверяет длительность занятия
func IsAllowedLessonDuration(minutes int) bool {
	for _, allowed := range AllowedLessonDurations {
		if allowed == minutes {
			return true
		}
	}
	return false
}
