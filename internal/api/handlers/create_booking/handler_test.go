package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-InstructorScheduler/internal/usecase/create_booking"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/logger"
)

type useCaseMock struct{ mock.Mock }

func (m *useCaseMock) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

const validBody = `{
	"instructorId": 1,
	"clientName": "Anna",
	"clientPhone": "+370 600 00000",
	"clientEmail": "anna@example.com",
	"startTime": "2026-10-21T09:00:00+03:00",
	"endTime": "2026-10-21T10:00:00+03:00"
}`

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := &useCaseMock{}
	h := NewHandler(uc, logger.NewNop())

	start := time.Date(2026, 10, 21, 6, 0, 0, 0, time.UTC)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.InstructorID == 1 && req.StartTime.Equal(start) && req.EndTime.Equal(start.Add(time.Hour))
	})).Return(&createBooking.Response{
		ID:           10,
		InstructorID: 1,
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Status:       "pending",
		CreatedAt:    start.Add(-24 * time.Hour),
	}, nil)

	rec := serve(h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2026-10-21T06:00:00Z", resp.StartTime)
	uc.AssertExpectations(t)
}

func TestHandler_BadRequestBeforeUseCase(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"instructorId":`},
		{name: "bad start", body: strings.Replace(validBody, "2026-10-21T09:00:00+03:00", "2026-10-21 09:00", 1)},
		{name: "missing end", body: `{"instructorId":1,"startTime":"2026-10-21T09:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseMock{}
			rec := serve(NewHandler(uc, logger.NewNop()), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: createBooking.ErrSlotNotAvailable, status: http.StatusConflict},
		{err: createBooking.ErrDateBlocked, status: http.StatusBadRequest},
		{err: createBooking.ErrInstructorNotFound, status: http.StatusNotFound},
		{err: createBooking.ErrInstructorInactive, status: http.StatusForbidden},
		{err: createBooking.ErrInvalidDate, status: http.StatusBadRequest},
		{err: createBooking.ErrDateTooFarInFuture, status: http.StatusBadRequest},
		{err: createBooking.ErrInvalidTimeSlot, status: http.StatusBadRequest},
		{err: fmt.Errorf("%w: clientName is required", createBooking.ErrInvalidInput), status: http.StatusBadRequest},
		{err: fmt.Errorf("%w: db down", createBooking.ErrInternal), status: http.StatusInternalServerError},
		{err: errors.New("unexpected"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &useCaseMock{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(uc, logger.NewNop()), validBody)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestHandler_ValidationMessageIsReturned(t *testing.T) {
	uc := &useCaseMock{}
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: clientEmail is malformed", createBooking.ErrInvalidInput))

	rec := serve(NewHandler(uc, logger.NewNop()), validBody)

	assert.JSONEq(t, `{"error":"clientEmail is malformed"}`, rec.Body.String())
}
