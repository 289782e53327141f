package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	InstructorID       int64   `json:"-"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// GetInstructorBookingsRequest запрос на получение бронирований инструктора
type GetInstructorBookingsRequest struct {
	InstructorID     int64      `json:"-"`
	From             *time.Time `json:"from,omitempty"`             // Начало периода (включительно)
	To               *time.Time `json:"to,omitempty"`               // Конец периода (не включительно)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отмененные бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetInstructorBookingsRequest) ToDomainFilter() (domain.InstructorBookingsFilter, error) {
	filter := domain.InstructorBookingsFilter{
		InstructorID:     r.InstructorID,
		From:             r.From,
		To:               r.To,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64  `json:"id"`
	InstructorID int64  `json:"instructorId"`
	ClientName   string `json:"clientName"`
	ClientPhone  string `json:"clientPhone"`
	ClientEmail  string `json:"clientEmail"`

	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`

	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                 b.ID,
		InstructorID:       b.InstructorID,
		ClientName:         b.ClientName,
		ClientPhone:        b.ClientPhone,
		ClientEmail:        b.ClientEmail,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		DurationMinutes:    int(b.Interval().Duration() / time.Minute),
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}
