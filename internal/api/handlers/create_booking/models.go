package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-InstructorScheduler/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	InstructorID int64   `json:"instructorId"`
	ClientName   string  `json:"clientName"`
	ClientPhone  string  `json:"clientPhone"`
	ClientEmail  string  `json:"clientEmail"`
	StartTime    string  `json:"startTime"` // RFC3339, "2026-10-21T09:00:00+03:00"
	EndTime      string  `json:"endTime"`   // RFC3339
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	InstructorID int64  `json:"instructorId"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		InstructorID: r.InstructorID,
		ClientName:   r.ClientName,
		ClientPhone:  r.ClientPhone,
		ClientEmail:  r.ClientEmail,
		StartTime:    start,
		EndTime:      end,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		InstructorID: resp.InstructorID,
		StartTime:    resp.StartTime.Format(time.RFC3339),
		EndTime:      resp.EndTime.Format(time.RFC3339),
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
