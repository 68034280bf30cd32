// Package storage keeps short-lived bot state in memory.
package storage

import (
	"sync"
	"time"
)

// ReminderMessage points at a reminder already delivered to a chat.
type ReminderMessage struct {
	ChatID    int64
	MessageID int
	SentAt    time.Time
}

// ReminderMessages remembers the last reminder sent to each user so the next
// one can replace it instead of piling up in the chat.
type ReminderMessages struct {
	mu       sync.Mutex
	messages map[int64]ReminderMessage
}

func NewReminderMessages() *ReminderMessages {
	return &ReminderMessages{
		messages: make(map[int64]ReminderMessage),
	}
}

// Swap records msg as the user's current reminder and returns the previous one.
func (s *ReminderMessages) Swap(userID int64, msg ReminderMessage) (prev ReminderMessage, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok = s.messages[userID]
	s.messages[userID] = msg
	return prev, ok
}

// Forget drops the stored reminder, returning it if there was one.
func (s *ReminderMessages) Forget(userID int64) (ReminderMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[userID]
	delete(s.messages, userID)
	return msg, ok
}
