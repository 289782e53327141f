package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	bookingRepo "github.com/m04kA/SMC-InstructorScheduler/internal/infra/storage/booking"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/bookings/models"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/logger"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/ptr"
)

type bookingRepoMock struct{ mock.Mock }

func (m *bookingRepoMock) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *bookingRepoMock) GetByInstructorWithFilter(ctx context.Context, filter domain.InstructorBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *bookingRepoMock) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, reason *string) (*domain.Booking, error) {
	args := m.Called(ctx, id, status, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type inlineTx struct{ calls int }

func (t *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

func booking(id, instructorID int64, status domain.BookingStatus) *domain.Booking {
	start := time.Date(2026, 10, 21, 9, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:           id,
		InstructorID: instructorID,
		ClientName:   "Anna",
		ClientPhone:  "+371 2000 0000",
		ClientEmail:  "anna@example.com",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Status:       status,
	}
}

func newService(repo *bookingRepoMock) (*Service, *inlineTx) {
	tx := &inlineTx{}
	return NewService(repo, tx, logger.NewNop()), tx
}

func TestService_UpdateStatus_OwnerConfirms(t *testing.T) {
	repo := &bookingRepoMock{}
	svc, tx := newService(repo)

	updated := booking(5, 1, domain.StatusConfirmed)
	repo.On("GetByID", mock.Anything, int64(5)).Return(booking(5, 1, domain.StatusPending), nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.StatusConfirmed, (*string)(nil)).Return(updated, nil)

	resp, err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		InstructorID: 1,
		Status:       "confirmed",
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, 1, tx.calls)
	repo.AssertExpectations(t)
}

func TestService_UpdateStatus_PermissiveTransitions(t *testing.T) {
	transitions := []struct {
		from domain.BookingStatus
		to   domain.BookingStatus
	}{
		{from: domain.StatusCancelled, to: domain.StatusConfirmed},
		{from: domain.StatusCancelled, to: domain.StatusPending},
		{from: domain.StatusConfirmed, to: domain.StatusPending},
		{from: domain.StatusPending, to: domain.StatusPending},
	}

	for _, tr := range transitions {
		t.Run(string(tr.from)+"->"+string(tr.to), func(t *testing.T) {
			repo := &bookingRepoMock{}
			svc, _ := newService(repo)

			repo.On("GetByID", mock.Anything, int64(7)).Return(booking(7, 1, tr.from), nil)
			repo.On("UpdateStatus", mock.Anything, int64(7), tr.to, (*string)(nil)).Return(booking(7, 1, tr.to), nil)

			resp, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{
				InstructorID: 1,
				Status:       string(tr.to),
			})

			require.NoError(t, err)
			assert.Equal(t, string(tr.to), resp.Status)
		})
	}
}

func TestService_UpdateStatus_CancellationReason(t *testing.T) {
	repo := &bookingRepoMock{}
	svc, _ := newService(repo)

	reason := ptr.Ptr("client is ill")
	cancelled := booking(5, 1, domain.StatusCancelled)
	cancelled.CancellationReason = reason

	repo.On("GetByID", mock.Anything, int64(5)).Return(booking(5, 1, domain.StatusPending), nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.StatusCancelled, reason).Return(cancelled, nil)

	resp, err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		InstructorID:       1,
		Status:             "cancelled",
		CancellationReason: reason,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "client is ill", *resp.CancellationReason)
}

func TestService_UpdateStatus_ReasonIgnoredUnlessCancelling(t *testing.T) {
	repo := &bookingRepoMock{}
	svc, _ := newService(repo)

	repo.On("GetByID", mock.Anything, int64(5)).Return(booking(5, 1, domain.StatusPending), nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.StatusConfirmed, (*string)(nil)).
		Return(booking(5, 1, domain.StatusConfirmed), nil)

	_, err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		InstructorID:       1,
		Status:             "confirmed",
		CancellationReason: ptr.Ptr("ignored"),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_UpdateStatus_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(repo *bookingRepoMock)
		req     *models.UpdateStatusRequest
		wantErr error
	}{
		{
			name: "booking not found",
			setup: func(repo *bookingRepoMock) {
				repo.On("GetByID", mock.Anything, int64(5)).Return(nil, bookingRepo.ErrBookingNotFound)
			},
			req:     &models.UpdateStatusRequest{InstructorID: 1, Status: "confirmed"},
			wantErr: ErrBookingNotFound,
		},
		{
			name: "other instructor",
			setup: func(repo *bookingRepoMock) {
				repo.On("GetByID", mock.Anything, int64(5)).Return(booking(5, 2, domain.StatusPending), nil)
			},
			req:     &models.UpdateStatusRequest{InstructorID: 1, Status: "confirmed"},
			wantErr: ErrAccessDenied,
		},
		{
			name: "unknown status",
			setup: func(repo *bookingRepoMock) {
				repo.On("GetByID", mock.Anything, int64(5)).Return(booking(5, 1, domain.StatusPending), nil)
			},
			req:     &models.UpdateStatusRequest{InstructorID: 1, Status: "completed"},
			wantErr: ErrInvalidInput,
		},
		{
			name: "reason too long",
			setup: func(repo *bookingRepoMock) {
				repo.On("GetByID", mock.Anything, int64(5)).Return(booking(5, 1, domain.StatusPending), nil)
			},
			req: &models.UpdateStatusRequest{
				InstructorID:       1,
				Status:             "cancelled",
				CancellationReason: ptr.Ptr(string(make([]byte, domain.MaxCancellationReasonLength+1))),
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "restoring into a taken slot",
			setup: func(repo *bookingRepoMock) {
				repo.On("GetByID", mock.Anything, int64(5)).Return(booking(5, 1, domain.StatusCancelled), nil)
				repo.On("UpdateStatus", mock.Anything, int64(5), domain.StatusPending, (*string)(nil)).
					Return(nil, bookingRepo.ErrSlotTaken)
			},
			req:     &models.UpdateStatusRequest{InstructorID: 1, Status: "pending"},
			wantErr: ErrSlotNotAvailable,
		},
		{
			name: "repository failure",
			setup: func(repo *bookingRepoMock) {
				repo.On("GetByID", mock.Anything, int64(5)).Return(nil, errors.New("connection reset"))
			},
			req:     &models.UpdateStatusRequest{InstructorID: 1, Status: "confirmed"},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &bookingRepoMock{}
			tt.setup(repo)
			svc, _ := newService(repo)

			resp, err := svc.UpdateStatus(context.Background(), 5, tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_GetInstructorBookings(t *testing.T) {
	repo := &bookingRepoMock{}
	svc, _ := newService(repo)

	from := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	status := domain.StatusConfirmed

	repo.On("GetByInstructorWithFilter", mock.Anything, domain.InstructorBookingsFilter{
		InstructorID: 1,
		From:         &from,
		To:           &to,
		Status:       &status,
	}).Return([]*domain.Booking{booking(1, 1, status), booking(2, 1, status)}, nil)

	resp, err := svc.GetInstructorBookings(context.Background(), &models.GetInstructorBookingsRequest{
		InstructorID: 1,
		From:         &from,
		To:           &to,
		Status:       ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestService_GetInstructorBookings_EmptyListIsNotNil(t *testing.T) {
	repo := &bookingRepoMock{}
	svc, _ := newService(repo)

	repo.On("GetByInstructorWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	resp, err := svc.GetInstructorBookings(context.Background(), &models.GetInstructorBookingsRequest{InstructorID: 1})

	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}

func TestService_GetInstructorBookings_InvalidInput(t *testing.T) {
	from := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *models.GetInstructorBookingsRequest
	}{
		{name: "unknown status", req: &models.GetInstructorBookingsRequest{InstructorID: 1, Status: ptr.Ptr("done")}},
		{name: "empty period", req: &models.GetInstructorBookingsRequest{InstructorID: 1, From: &from, To: &from}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &bookingRepoMock{}
			svc, _ := newService(repo)

			_, err := svc.GetInstructorBookings(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "GetByInstructorWithFilter", mock.Anything, mock.Anything)
		})
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &bookingRepoMock{}
	svc, _ := newService(repo)

	repo.On("GetByID", mock.Anything, int64(5)).Return(booking(5, 1, domain.StatusPending), nil)
	repo.On("GetByID", mock.Anything, int64(6)).Return(nil, bookingRepo.ErrBookingNotFound)

	resp, err := svc.GetByID(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, "Anna", resp.ClientName)

	_, err = svc.GetByID(context.Background(), 5, 2)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 6, 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
