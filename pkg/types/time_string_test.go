package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "08:30"},
		{name: "end of day", input: "24:00"},
		{name: "midnight", input: "00:00"},
		{name: "missing zero", input: "8:30", wantErr: true},
		{name: "bad hour", input: "25:00", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("23:00")

	got, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = ts.AddMinutes(61)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	got, err = TimeString("08:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("24:00").IsAfter("23:59"))
	assert.Equal(t, 570, TimeString("09:30").Minutes())
	assert.Equal(t, -1, TimeString("xx").Minutes())
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("EET", 2*60*60)

	date := time.Date(2026, 3, 29, 0, 0, 0, 0, time.UTC)
	got := TimeString("10:00").On(date, loc)

	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, 29, got.Day())
	assert.Equal(t, loc, got.Location())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("10:15")))
	assert.Equal(t, TimeString("10:15"), ts)

	require.NoError(t, ts.Scan("11:00"))
	assert.Equal(t, TimeString("11:00"), ts)

	assert.Error(t, ts.Scan(42))
}
