package update_booking_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InstructorScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/bookings"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/bookings/models"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/logger"
)

type serviceMock struct{ mock.Mock }

func (m *serviceMock) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, bookingID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

func serve(h *Handler, bookingID string, instructorID int64, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/status", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	if instructorID > 0 {
		req = req.WithContext(middleware.WithInstructorID(req.Context(), instructorID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_UpdatesWithSessionInstructor(t *testing.T) {
	svc := &serviceMock{}
	reason := "заболел"
	svc.On("UpdateStatus", mock.Anything, int64(5), &models.UpdateStatusRequest{
		InstructorID:       7,
		Status:             "cancelled",
		CancellationReason: &reason,
	}).Return(&models.BookingResponse{ID: 5, InstructorID: 7, Status: "cancelled", CancellationReason: &reason}, nil)

	rec := serve(NewHandler(svc, logger.NewNop()), "5", 7, `{"status":"cancelled","cancellationReason":"заболел"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
	svc.AssertExpectations(t)
}

func TestHandler_InstructorIDFromBodyIsIgnored(t *testing.T) {
	svc := &serviceMock{}
	svc.On("UpdateStatus", mock.Anything, int64(5), mock.MatchedBy(func(req *models.UpdateStatusRequest) bool {
		return req.InstructorID == 7
	})).Return(&models.BookingResponse{ID: 5, Status: "confirmed"}, nil)

	rec := serve(NewHandler(svc, logger.NewNop()), "5", 7, `{"status":"confirmed","instructorId":99}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandler_RejectsBeforeService(t *testing.T) {
	tests := []struct {
		name         string
		bookingID    string
		instructorID int64
		body         string
		status       int
	}{
		{name: "bad id", bookingID: "abc", instructorID: 7, body: `{"status":"confirmed"}`, status: http.StatusBadRequest},
		{name: "zero id", bookingID: "0", instructorID: 7, body: `{"status":"confirmed"}`, status: http.StatusBadRequest},
		{name: "no session", bookingID: "5", body: `{"status":"confirmed"}`, status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceMock{}
			rec := serve(NewHandler(svc, logger.NewNop()), tt.bookingID, tt.instructorID, tt.body)

			assert.Equal(t, tt.status, rec.Code)
			svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

// TestHandler_MalformedBodyAfterOwnershipChecks несуществующее или чужое бронирование
// дает 404/403 даже при битом теле, 400 только для своего бронирования
func TestHandler_MalformedBodyAfterOwnershipChecks(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{name: "missing booking", err: bookings.ErrBookingNotFound, status: http.StatusNotFound, body: `{"error":"бронирование не найдено"}`},
		{name: "foreign booking", err: bookings.ErrAccessDenied, status: http.StatusForbidden, body: `{"error":"доступ запрещен"}`},
		{
			name:   "own booking",
			err:    fmt.Errorf("%w: invalid status", bookings.ErrInvalidInput),
			status: http.StatusBadRequest,
			body:   `{"error":"некорректное тело запроса"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceMock{}
			svc.On("UpdateStatus", mock.Anything, int64(5), &models.UpdateStatusRequest{InstructorID: 7}).Return(nil, tt.err)

			rec := serve(NewHandler(svc, logger.NewNop()), "5", 7, `status=confirmed`)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: bookings.ErrBookingNotFound, status: http.StatusNotFound},
		{err: bookings.ErrAccessDenied, status: http.StatusForbidden},
		{err: fmt.Errorf("%w: unknown status", bookings.ErrInvalidInput), status: http.StatusBadRequest},
		{err: bookings.ErrSlotNotAvailable, status: http.StatusConflict},
		{err: bookings.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &serviceMock{}
			svc.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(svc, logger.NewNop()), "5", 7, `{"status":"confirmed"}`)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
