package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimezone(t *testing.T) {
	tests := []struct {
		in         string
		wantOffset int
	}{
		{"", 0},
		{"UTC", 0},
		{"gmt", 0},
		{"UTC-3", -3 * 3600},
		{"+05:30", 5*3600 + 30*60},
		{"-3", -3 * 3600},
	}

	ref := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			loc, err := ParseTimezone(tc.in)
			require.NoError(t, err)
			_, offset := ref.In(loc).Zone()
			assert.Equal(t, tc.wantOffset, offset)
		})
	}

	for _, bad := range []string{"Mars/Olympus", "UTC+15", "+3:75", "3"} {
		_, err := ParseTimezone(bad)
		assert.Error(t, err, bad)
	}
}

func TestReminderTargetShouldSend(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 15, 0, 0, time.UTC) // 09:15 in UTC-3

	base := func() *ReminderTarget {
		return &ReminderTarget{
			ReminderSettings: ReminderSettings{UserID: 1, IsEnabled: true, Hour: 9, Timezone: "UTC-3"},
			ChatID:           1,
			DueCount:         3,
		}
	}

	assert.True(t, base().ShouldSend(now))

	disabled := base()
	disabled.IsEnabled = false
	assert.False(t, disabled.ShouldSend(now))

	nothingDue := base()
	nothingDue.DueCount = 0
	assert.False(t, nothingDue.ShouldSend(now))

	wrongHour := base()
	wrongHour.Hour = 10
	assert.False(t, wrongHour.ShouldSend(now))

	sentToday := base()
	earlier := now.Add(-10 * time.Minute)
	sentToday.LastSentAt = &earlier
	assert.False(t, sentToday.ShouldSend(now))

	sentYesterday := base()
	yesterday := now.AddDate(0, 0, -1)
	sentYesterday.LastSentAt = &yesterday
	assert.True(t, sentYesterday.ShouldSend(now))
}
