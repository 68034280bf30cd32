package entities

import "time"

const DefaultReminderHour = 9

// ReminderSettings controls the daily "cards are due" notification.
type ReminderSettings struct {
	UserID     int64
	IsEnabled  bool
	Hour       int    // local hour, 0..23
	Timezone   string // see ParseTimezone
	LastSentAt *time.Time
	UpdatedAt  time.Time
}

// NewReminderSettings returns the settings a user gets on first contact.
func NewReminderSettings(userID int64) *ReminderSettings {
	return &ReminderSettings{
		UserID:    userID,
		IsEnabled: true,
		Hour:      DefaultReminderHour,
		Timezone:  "UTC",
		UpdatedAt: time.Now().UTC(),
	}
}

// ReminderTarget is an enabled reminder joined with the user's chat and due count.
type ReminderTarget struct {
	ReminderSettings
	ChatID   int64
	DueCount int
}

// ShouldSend reports whether a reminder is due at now: reminders go out once
// per local day, during the configured hour, and only when cards are waiting.
func (r *ReminderTarget) ShouldSend(now time.Time) bool {
	if !r.IsEnabled || r.DueCount == 0 {
		return false
	}

	loc, err := ParseTimezone(r.Timezone)
	if err != nil {
		loc = time.UTC
	}

	local := now.In(loc)
	if local.Hour() != r.Hour {
		return false
	}

	if r.LastSentAt == nil {
		return true
	}
	return !sameDay(r.LastSentAt.In(loc), local)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
