package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 10, 19, hour, minute, 0, 0, time.UTC)
}

func TestInterval_Overlaps(t *testing.T) {
	existing := Interval{Start: at(9, 0), End: at(10, 0)}

	tests := []struct {
		name     string
		proposed Interval
		want     bool
	}{
		{name: "partial overlap at the end", proposed: Interval{Start: at(9, 30), End: at(10, 30)}, want: true},
		{name: "partial overlap at the start", proposed: Interval{Start: at(8, 30), End: at(9, 30)}, want: true},
		{name: "identical", proposed: Interval{Start: at(9, 0), End: at(10, 0)}, want: true},
		{name: "contains existing", proposed: Interval{Start: at(8, 0), End: at(11, 0)}, want: true},
		{name: "inside existing", proposed: Interval{Start: at(9, 15), End: at(9, 45)}, want: true},
		{name: "touches end", proposed: Interval{Start: at(10, 0), End: at(11, 0)}, want: false},
		{name: "touches start", proposed: Interval{Start: at(8, 0), End: at(9, 0)}, want: false},
		{name: "disjoint", proposed: Interval{Start: at(12, 0), End: at(13, 0)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.proposed.Overlaps(existing))
			assert.Equal(t, tt.want, existing.Overlaps(tt.proposed), "overlap must be symmetric")
		})
	}
}

func TestInterval_IsValid(t *testing.T) {
	assert.True(t, Interval{Start: at(9, 0), End: at(10, 0)}.IsValid())
	assert.False(t, Interval{Start: at(10, 0), End: at(10, 0)}.IsValid())
	assert.Equal(t, 90*time.Minute, Interval{Start: at(9, 0), End: at(10, 30)}.Duration())
}

func TestParseBookingStatus(t *testing.T) {
	status, ok := ParseBookingStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, status)

	_, ok = ParseBookingStatus("completed")
	assert.False(t, ok)
}

func TestWorkingHourRule_IsValid(t *testing.T) {
	valid := WorkingHourRule{DayOfWeek: time.Monday, StartTime: "08:00", EndTime: "12:00", IsActive: true}
	assert.True(t, valid.IsValid())
	assert.True(t, valid.AppliesTo(time.Monday))
	assert.False(t, valid.AppliesTo(time.Tuesday))

	reversed := WorkingHourRule{DayOfWeek: time.Monday, StartTime: "12:00", EndTime: "08:00"}
	assert.False(t, reversed.IsValid())

	badDay := WorkingHourRule{DayOfWeek: 7, StartTime: "08:00", EndTime: "12:00"}
	assert.False(t, badDay.IsValid())

	inactive := WorkingHourRule{DayOfWeek: time.Monday, StartTime: "08:00", EndTime: "12:00"}
	assert.False(t, inactive.AppliesTo(time.Monday))
}

func TestInstructor_AcceptsBookings(t *testing.T) {
	assert.True(t, (&Instructor{SubscriptionStatus: SubscriptionTrial}).AcceptsBookings())
	assert.True(t, (&Instructor{SubscriptionStatus: SubscriptionActive}).AcceptsBookings())
	assert.False(t, (&Instructor{SubscriptionStatus: SubscriptionInactive}).AcceptsBookings())
}
