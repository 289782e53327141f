package domain

import "time"

// SubscriptionStatus статус подписки инструктора
type SubscriptionStatus string

const (
	SubscriptionTrial    SubscriptionStatus = "trial"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
)

// Instructor владелец расписания и публичной страницы записи
type Instructor struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Slug         string
	Phone        *string
	Bio          *string

	SubscriptionStatus SubscriptionStatus
	TrialEndsAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AcceptsBookings returns false when the subscription is inactive
func (i *Instructor) AcceptsBookings() bool {
	return i.SubscriptionStatus != SubscriptionInactive
}

// ParseSubscriptionStatus validates a raw subscription status value
func ParseSubscriptionStatus(raw string) (SubscriptionStatus, bool) {
	switch s := SubscriptionStatus(raw); s {
	case SubscriptionTrial, SubscriptionActive, SubscriptionInactive:
		return s, true
	}
	return "", false
}
