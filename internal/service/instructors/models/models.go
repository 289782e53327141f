package models

import (
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
)

// Request модели

// RegisterRequest запрос на регистрацию инструктора
type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateSubscriptionRequest запрос на изменение статуса подписки (от биллинга)
type UpdateSubscriptionRequest struct {
	Status string `json:"status"`
}

// Response модели

// InstructorResponse публичные данные инструктора
type InstructorResponse struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Slug               string     `json:"slug"`
	Phone              *string    `json:"phone,omitempty"`
	SubscriptionStatus string     `json:"subscriptionStatus"`
	TrialEndsAt        *time.Time `json:"trialEndsAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// AuthResponse ответ на регистрацию и вход
type AuthResponse struct {
	Token      string             `json:"token"`
	ExpiresAt  time.Time          `json:"expiresAt"`
	Instructor InstructorResponse `json:"instructor"`
}

// FromDomainInstructor конвертирует domain модель в DTO
func FromDomainInstructor(i *domain.Instructor) *InstructorResponse {
	if i == nil {
		return nil
	}

	return &InstructorResponse{
		ID:                 i.ID,
		Name:               i.Name,
		Email:              i.Email,
		Slug:               i.Slug,
		Phone:              i.Phone,
		SubscriptionStatus: string(i.SubscriptionStatus),
		TrialEndsAt:        i.TrialEndsAt,
		CreatedAt:          i.CreatedAt,
	}
}
