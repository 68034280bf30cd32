package entities

import "time"

// User is a learner. The ID is the Telegram user ID for bot users and an
// externally assigned numeric ID for API clients.
type User struct {
	ID           int64
	ChatID       int64
	FirstName    string
	LastName     string
	Username     string
	LanguageCode string
	IsActive     bool
	CreatedAt    time.Time
}

func NewUser(id, chatID int64) *User {
	return &User{
		ID:        id,
		ChatID:    chatID,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}
