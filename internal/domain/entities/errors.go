package entities

import "errors"

// Errors returned by repositories and services for missing or absent data.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrFlashcardNotFound   = errors.New("flashcard not found")
	ErrDeckNotFound        = errors.New("deck not found")
	ErrReviewStateNotFound = errors.New("review state not found")
	ErrReminderNotFound    = errors.New("reminder settings not found")
	ErrNoCardsDue          = errors.New("no cards due for review")
)
