package timezone_test

import (
	"testing"
	"time"

	"tourbook/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
	assert.Equal(t, timezone.GetLocation(), timezone.Now().Location())
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 3, 10, 17, 45, 0, 0, timezone.GetLocation())
	got := timezone.StartOfDay(in)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, timezone.GetLocation()), got)
	assert.Equal(t, timezone.StartOfDay(timezone.Now()), timezone.Today())
}

func TestWithinDays(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, timezone.GetLocation())

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "same day", at: now.Add(-time.Hour), want: true},
		{name: "exactly thirty days back", at: time.Date(2024, 3, 1, 0, 0, 0, 0, timezone.GetLocation()), want: true},
		{name: "thirty one days back", at: time.Date(2024, 2, 29, 23, 0, 0, 0, timezone.GetLocation()), want: false},
		{name: "future", at: now.Add(24 * time.Hour), want: false},
		{name: "zero", at: time.Time{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timezone.WithinDays(tt.at, now, 30))
		})
	}
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2024-01-15")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", timezone.Format(parsed, time.DateOnly))
}
