package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminderMessagesSwap(t *testing.T) {
	s := NewReminderMessages()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	_, ok := s.Swap(1, ReminderMessage{ChatID: 1, MessageID: 10, SentAt: at})
	assert.False(t, ok)

	prev, ok := s.Swap(1, ReminderMessage{ChatID: 1, MessageID: 11, SentAt: at.Add(time.Hour)})
	assert.True(t, ok)
	assert.Equal(t, 10, prev.MessageID)

	_, ok = s.Swap(2, ReminderMessage{ChatID: 2, MessageID: 5})
	assert.False(t, ok, "users are tracked separately")
}

func TestReminderMessagesForget(t *testing.T) {
	s := NewReminderMessages()
	s.Swap(1, ReminderMessage{ChatID: 1, MessageID: 10})

	msg, ok := s.Forget(1)
	assert.True(t, ok)
	assert.Equal(t, 10, msg.MessageID)

	_, ok = s.Forget(1)
	assert.False(t, ok)
}
