package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
)

func TestSettingsServiceGetOrCreate(t *testing.T) {
	repo := newFakeReminderRepo()
	svc := NewSettingsService(repo)

	settings, err := svc.GetOrCreate(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, settings.IsEnabled)
	assert.Equal(t, entities.DefaultReminderHour, settings.Hour)
	assert.Contains(t, repo.settings, int64(7))
}

func TestSettingsServiceSetHour(t *testing.T) {
	repo := newFakeReminderRepo()
	svc := NewSettingsService(repo)
	svc.now = fixedClock(t0)
	ctx := context.Background()

	_, err := svc.SetEnabled(ctx, 7, false)
	require.NoError(t, err)

	settings, err := svc.SetHour(ctx, 7, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, settings.Hour)
	assert.True(t, settings.IsEnabled, "setting an hour turns reminders on")
	assert.Equal(t, t0, settings.UpdatedAt)

	for _, bad := range []int{-1, 24} {
		_, err := svc.SetHour(ctx, 7, bad)
		assert.ErrorIs(t, err, ErrInvalidReminderHour)
	}

	stored, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 20, stored.Hour)
}

func TestSettingsServiceSetTimezone(t *testing.T) {
	svc := NewSettingsService(newFakeReminderRepo())
	ctx := context.Background()

	settings, err := svc.SetTimezone(ctx, 7, "utc-3")
	require.NoError(t, err)
	assert.Equal(t, "UTC-03:00", settings.Timezone)

	_, err = svc.SetTimezone(ctx, 7, "Atlantis/Capital")
	assert.ErrorIs(t, err, entities.ErrInvalidTimezone)
}
