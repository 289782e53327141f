package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InstructorScheduler/internal/domain"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/types"
)

var vilnius = time.FixedZone("EET", 2*60*60)

// 2026-10-19 - понедельник
func monday() time.Time {
	return time.Date(2026, 10, 19, 0, 0, 0, 0, vilnius)
}

func rule(day time.Weekday, start, end string) domain.WorkingHourRule {
	return domain.WorkingHourRule{DayOfWeek: day, StartTime: types.TimeString(start), EndTime: types.TimeString(end), IsActive: true}
}

func booking(start, end time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{InstructorID: 1, StartTime: start, EndTime: end, Status: status}
}

func startTimes(slots []domain.AvailableSlot) []types.TimeString {
	out := make([]types.TimeString, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime
	}
	return out
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name     string
		rules    []domain.WorkingHourRule
		day      time.Weekday
		duration int
		want     []types.TimeString
	}{
		{
			name:     "evenly divisible window",
			rules:    []domain.WorkingHourRule{rule(time.Monday, "08:00", "12:00")},
			day:      time.Monday,
			duration: 60,
			want:     []types.TimeString{"08:00", "09:00", "10:00", "11:00"},
		},
		{
			name:     "partial trailing slot dropped",
			rules:    []domain.WorkingHourRule{rule(time.Monday, "08:00", "09:30")},
			day:      time.Monday,
			duration: 60,
			want:     []types.TimeString{"08:00"},
		},
		{
			name:     "ninety minute lessons",
			rules:    []domain.WorkingHourRule{rule(time.Monday, "08:00", "12:30")},
			day:      time.Monday,
			duration: 90,
			want:     []types.TimeString{"08:00", "09:30", "11:00"},
		},
		{
			name: "split shift keeps rule order",
			rules: []domain.WorkingHourRule{
				rule(time.Monday, "14:00", "16:00"),
				rule(time.Monday, "08:00", "10:00"),
			},
			day:      time.Monday,
			duration: 60,
			want:     []types.TimeString{"14:00", "15:00", "08:00", "09:00"},
		},
		{
			name: "adjacent rules walked independently",
			rules: []domain.WorkingHourRule{
				rule(time.Monday, "08:00", "09:30"),
				rule(time.Monday, "09:30", "11:00"),
			},
			day:      time.Monday,
			duration: 60,
			want:     []types.TimeString{"08:00", "09:30"},
		},
		{
			name:     "other weekday ignored",
			rules:    []domain.WorkingHourRule{rule(time.Tuesday, "08:00", "12:00")},
			day:      time.Monday,
			duration: 60,
			want:     []types.TimeString{},
		},
		{
			name: "inactive rule ignored",
			rules: []domain.WorkingHourRule{
				{DayOfWeek: time.Monday, StartTime: "08:00", EndTime: "12:00", IsActive: false},
			},
			day:      time.Monday,
			duration: 60,
			want:     []types.TimeString{},
		},
		{
			name:     "window shorter than lesson",
			rules:    []domain.WorkingHourRule{rule(time.Monday, "08:00", "08:45")},
			day:      time.Monday,
			duration: 60,
			want:     []types.TimeString{},
		},
		{
			name:     "window until end of day",
			rules:    []domain.WorkingHourRule{rule(time.Monday, "22:00", "24:00")},
			day:      time.Monday,
			duration: 60,
			want:     []types.TimeString{"22:00", "23:00"},
		},
		{
			name:     "zero duration",
			rules:    []domain.WorkingHourRule{rule(time.Monday, "08:00", "12:00")},
			day:      time.Monday,
			duration: 0,
			want:     []types.TimeString{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlots(tt.rules, tt.day, tt.duration))
		})
	}
}

func TestGenerateSlots_CountProperty(t *testing.T) {
	for _, duration := range []int{30, 45, 60, 90} {
		for windows := 1; windows <= 6; windows++ {
			start := types.TimeString("07:00")
			end, err := start.AddMinutes(duration * windows)
			require.NoError(t, err)

			slots := GenerateSlots([]domain.WorkingHourRule{rule(time.Friday, start.String(), end.String())}, time.Friday, duration)

			require.Len(t, slots, windows)
			assert.Equal(t, start, slots[0])
			lastEnd, err := slots[len(slots)-1].AddMinutes(duration)
			require.NoError(t, err)
			assert.Equal(t, end, lastEnd)
		}
	}
}

func TestAvailableSlots_Scenario(t *testing.T) {
	rules := []domain.WorkingHourRule{rule(time.Monday, "08:00", "12:00")}
	day := monday()

	slots := AvailableSlots(day, rules, nil, nil, 60)
	assert.Equal(t, []types.TimeString{"08:00", "09:00", "10:00", "11:00"}, startTimes(slots))

	bookings := []*domain.Booking{
		booking(day.Add(9*time.Hour), day.Add(10*time.Hour), domain.StatusConfirmed),
	}
	slots = AvailableSlots(day, rules, nil, bookings, 60)
	assert.Equal(t, []types.TimeString{"08:00", "10:00", "11:00"}, startTimes(slots))

	first := slots[0]
	assert.Equal(t, day.Add(8*time.Hour), first.Start)
	assert.Equal(t, day.Add(9*time.Hour), first.End)
	assert.Equal(t, 60, first.DurationMinutes)
}

func TestAvailableSlots_CancelledBookingDoesNotBlock(t *testing.T) {
	rules := []domain.WorkingHourRule{rule(time.Monday, "08:00", "10:00")}
	day := monday()
	bookings := []*domain.Booking{
		booking(day.Add(8*time.Hour), day.Add(9*time.Hour), domain.StatusCancelled),
		booking(day.Add(9*time.Hour), day.Add(10*time.Hour), domain.StatusPending),
	}

	slots := AvailableSlots(day, rules, nil, bookings, 60)

	assert.Equal(t, []types.TimeString{"08:00"}, startTimes(slots))
}

func TestAvailableSlots_PartialOverlapRemovesSlot(t *testing.T) {
	rules := []domain.WorkingHourRule{rule(time.Monday, "08:00", "12:00")}
	day := monday()
	// 09:30-10:30 задевает и слот 09:00, и слот 10:00
	bookings := []*domain.Booking{
		booking(day.Add(9*time.Hour+30*time.Minute), day.Add(10*time.Hour+30*time.Minute), domain.StatusConfirmed),
	}

	slots := AvailableSlots(day, rules, nil, bookings, 60)

	assert.Equal(t, []types.TimeString{"08:00", "11:00"}, startTimes(slots))
}

// TestAvailableSlots_SortedAndDeduplicated пересекающиеся правила одного дня дают один слот
// на каждое совпавшее время начала, итог отсортирован по началу
func TestAvailableSlots_SortedAndDeduplicated(t *testing.T) {
	rules := []domain.WorkingHourRule{
		rule(time.Monday, "14:00", "16:00"),
		rule(time.Monday, "08:00", "10:00"),
		rule(time.Monday, "09:00", "11:00"),
	}

	slots := AvailableSlots(monday(), rules, nil, nil, 60)

	assert.Equal(t, []types.TimeString{"08:00", "09:00", "10:00", "14:00", "15:00"}, startTimes(slots))
}

func TestWithinWorkingHours(t *testing.T) {
	rules := []domain.WorkingHourRule{
		rule(time.Monday, "08:00", "12:00"),
		rule(time.Monday, "14:00", "16:00"),
		{DayOfWeek: time.Monday, StartTime: "18:00", EndTime: "20:00", IsActive: false},
	}
	day := monday()

	tests := []struct {
		name   string
		start  time.Time
		length time.Duration
		want   bool
	}{
		{name: "grid start", start: day.Add(9 * time.Hour), length: time.Hour, want: true},
		{name: "off grid start", start: day.Add(10*time.Hour + 30*time.Minute), length: time.Hour, want: true},
		{name: "ends at window end", start: day.Add(11 * time.Hour), length: time.Hour, want: true},
		{name: "starts before window", start: day.Add(7*time.Hour + 30*time.Minute), length: time.Hour, want: false},
		{name: "runs past window end", start: day.Add(11*time.Hour + 30*time.Minute), length: time.Hour, want: false},
		{name: "spans gap between windows", start: day.Add(11 * time.Hour), length: 4 * time.Hour, want: false},
		{name: "second window", start: day.Add(14*time.Hour + 15*time.Minute), length: time.Hour, want: true},
		{name: "inactive rule", start: day.Add(18 * time.Hour), length: time.Hour, want: false},
		{name: "other weekday", start: day.AddDate(0, 0, 1).Add(9 * time.Hour), length: time.Hour, want: false},
		{name: "zero length", start: day.Add(9 * time.Hour), length: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinWorkingHours(rules, tt.start, tt.length))
		})
	}
}

func TestAvailableSlots_BlockedDay(t *testing.T) {
	rules := []domain.WorkingHourRule{rule(time.Monday, "08:00", "12:00")}
	day := monday()
	blocked := []domain.BlockedRange{{StartDate: day.Add(-48 * time.Hour), EndDate: day.Add(15 * time.Hour)}}

	assert.Empty(t, AvailableSlots(day, rules, blocked, nil, 60))
}

func TestAvailableSlots_Idempotent(t *testing.T) {
	rules := []domain.WorkingHourRule{rule(time.Monday, "08:00", "12:00"), rule(time.Monday, "13:00", "17:00")}
	day := monday()
	bookings := []*domain.Booking{booking(day.Add(13*time.Hour), day.Add(14*time.Hour), domain.StatusPending)}

	first := AvailableSlots(day, rules, nil, bookings, 60)
	second := AvailableSlots(day, rules, nil, bookings, 60)

	assert.Equal(t, first, second)
}

func TestIsDateBlocked(t *testing.T) {
	day := monday()

	tests := []struct {
		name    string
		blocked domain.BlockedRange
		want    bool
	}{
		{
			name:    "range covers day",
			blocked: domain.BlockedRange{StartDate: day.AddDate(0, 0, -1), EndDate: day.AddDate(0, 0, 1)},
			want:    true,
		},
		{
			name:    "range starts later the same day",
			blocked: domain.BlockedRange{StartDate: day.Add(15 * time.Hour), EndDate: day.AddDate(0, 0, 3)},
			want:    true,
		},
		{
			name:    "range ends earlier the same day",
			blocked: domain.BlockedRange{StartDate: day.AddDate(0, 0, -3), EndDate: day.Add(time.Hour)},
			want:    true,
		},
		{
			name:    "single day range",
			blocked: domain.BlockedRange{StartDate: day, EndDate: day},
			want:    true,
		},
		{
			name:    "range ends the day before",
			blocked: domain.BlockedRange{StartDate: day.AddDate(0, 0, -3), EndDate: day.AddDate(0, 0, -1).Add(23 * time.Hour)},
			want:    false,
		},
		{
			name:    "range starts the day after",
			blocked: domain.BlockedRange{StartDate: day.AddDate(0, 0, 1), EndDate: day.AddDate(0, 0, 2)},
			want:    false,
		},
		{
			name: "range stored in UTC is compared in local days",
			// 2026-10-18 22:30 UTC = 2026-10-19 00:30 EET
			blocked: domain.BlockedRange{
				StartDate: time.Date(2026, 10, 18, 22, 30, 0, 0, time.UTC),
				EndDate:   time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateBlocked(day, []domain.BlockedRange{tt.blocked}))
		})
	}
}

func TestAvailableDates(t *testing.T) {
	// Сегодня понедельник 2026-10-19, окно 14 дней: 20.10 .. 02.11
	today := monday().Add(10 * time.Hour)
	rules := []domain.WorkingHourRule{
		rule(time.Monday, "08:00", "12:00"),
		rule(time.Wednesday, "08:00", "12:00"),
		{DayOfWeek: time.Friday, StartTime: "08:00", EndTime: "12:00", IsActive: false},
	}
	blocked := []domain.BlockedRange{{
		StartDate: time.Date(2026, 10, 28, 0, 0, 0, 0, vilnius),
		EndDate:   time.Date(2026, 10, 28, 0, 0, 0, 0, vilnius),
	}}

	dates := AvailableDates(today, 14, rules, blocked)

	want := []time.Time{
		time.Date(2026, 10, 21, 0, 0, 0, 0, vilnius), // среда
		time.Date(2026, 10, 26, 0, 0, 0, 0, vilnius), // понедельник
		// 28.10 (среда) заблокирована
		time.Date(2026, 11, 2, 0, 0, 0, 0, vilnius), // понедельник
	}
	assert.Equal(t, want, dates)
}

func TestAvailableDates_StartsTomorrow(t *testing.T) {
	rules := []domain.WorkingHourRule{rule(time.Monday, "08:00", "12:00")}

	dates := AvailableDates(monday(), 7, rules, nil)

	require.Len(t, dates, 1)
	assert.Equal(t, monday().AddDate(0, 0, 7), dates[0])
}

func TestHasConflict(t *testing.T) {
	day := monday()
	existing := []*domain.Booking{booking(day.Add(9*time.Hour), day.Add(10*time.Hour), domain.StatusConfirmed)}

	assert.True(t, HasConflict(existing, domain.Interval{Start: day.Add(9*time.Hour + 30*time.Minute), End: day.Add(10*time.Hour + 30*time.Minute)}))
	assert.False(t, HasConflict(existing, domain.Interval{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)}))

	cancelled := []*domain.Booking{booking(day.Add(9*time.Hour), day.Add(10*time.Hour), domain.StatusCancelled)}
	assert.False(t, HasConflict(cancelled, domain.Interval{Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)}))
}

type bookingRepoMock struct {
	mock.Mock
}

func (m *bookingRepoMock) GetOverlapping(ctx context.Context, instructorID int64, interval domain.Interval) ([]*domain.Booking, error) {
	args := m.Called(ctx, instructorID, interval)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func TestChecker_HasConflict(t *testing.T) {
	ctx := context.Background()
	day := monday()
	start, end := day.Add(9*time.Hour+30*time.Minute), day.Add(10*time.Hour+30*time.Minute)

	repo := &bookingRepoMock{}
	repo.On("GetOverlapping", ctx, int64(1), domain.Interval{Start: start, End: end}).
		Return([]*domain.Booking{booking(day.Add(9*time.Hour), day.Add(10*time.Hour), domain.StatusConfirmed)}, nil)

	conflict, err := NewChecker(repo).HasConflict(ctx, 1, start, end)

	require.NoError(t, err)
	assert.True(t, conflict)
	repo.AssertExpectations(t)
}

func TestChecker_NoConflict(t *testing.T) {
	ctx := context.Background()
	day := monday()

	repo := &bookingRepoMock{}
	repo.On("GetOverlapping", ctx, int64(1), mock.Anything).Return([]*domain.Booking{}, nil)

	conflict, err := NewChecker(repo).HasConflict(ctx, 1, day.Add(10*time.Hour), day.Add(11*time.Hour))

	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestChecker_InvalidInterval(t *testing.T) {
	day := monday()

	_, err := NewChecker(&bookingRepoMock{}).HasConflict(context.Background(), 1, day.Add(10*time.Hour), day.Add(10*time.Hour))

	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestChecker_RepositoryError(t *testing.T) {
	repo := &bookingRepoMock{}
	repo.On("GetOverlapping", mock.Anything, int64(1), mock.Anything).Return(nil, errors.New("db down"))
	day := monday()

	_, err := NewChecker(repo).HasConflict(context.Background(), 1, day.Add(10*time.Hour), day.Add(11*time.Hour))

	assert.ErrorIs(t, err, ErrInternal)
}
