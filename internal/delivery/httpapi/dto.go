package httpapi

import (
	"time"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
	"github.com/aliskhannn/flashcards/internal/service"
)

type rateRequest struct {
	UserID      int64  `json:"user_id" validate:"required,gt=0"`
	FlashcardID string `json:"flashcard_id" validate:"required,uuid"`
	Quality     *int   `json:"quality" validate:"required"` // range is checked by the scheduler
}

type rateResponse struct {
	FlashcardID  string    `json:"flashcard_id"`
	DueDate      time.Time `json:"due_date"`
	IntervalDays int       `json:"interval_days"`
	EaseFactor   float64   `json:"ease_factor"`
	Repetitions  int       `json:"repetitions"`
}

func newRateResponse(r *service.RateResult) rateResponse {
	return rateResponse{
		FlashcardID:  r.FlashcardID.String(),
		DueDate:      r.DueDate,
		IntervalDays: r.IntervalDays,
		EaseFactor:   r.EaseFactor,
		Repetitions:  r.Repetitions,
	}
}

type flashcardRequest struct {
	OwnerID int64   `json:"owner_id" validate:"required,gt=0"`
	DeckID  *string `json:"deck_id" validate:"omitempty,uuid"`
	Front   string  `json:"front" validate:"notblank,max=2000"`
	Back    string  `json:"back" validate:"notblank,max=4000"`
}

type flashcardResponse struct {
	ID        string    `json:"id"`
	DeckID    *string   `json:"deck_id"`
	OwnerID   int64     `json:"owner_id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newFlashcardResponse(c *entities.Flashcard) flashcardResponse {
	resp := flashcardResponse{
		ID:        c.ID.String(),
		OwnerID:   c.OwnerID,
		Front:     c.Front,
		Back:      c.Back,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.DeckID != nil {
		id := c.DeckID.String()
		resp.DeckID = &id
	}
	return resp
}

func newFlashcardList(cards []*entities.Flashcard) []flashcardResponse {
	out := make([]flashcardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, newFlashcardResponse(c))
	}
	return out
}

type deckRequest struct {
	OwnerID int64  `json:"owner_id" validate:"required,gt=0"`
	Title   string `json:"title" validate:"notblank,max=200"`
}

type deckResponse struct {
	ID        string    `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func newDeckResponse(d *entities.Deck) deckResponse {
	return deckResponse{ID: d.ID.String(), OwnerID: d.OwnerID, Title: d.Title, CreatedAt: d.CreatedAt}
}

type dueCountResponse struct {
	DueCount int `json:"due_count"`
}

type achievementResponse struct {
	Code     string  `json:"code"`
	Title    string  `json:"title"`
	Target   int     `json:"target"`
	Current  int     `json:"current"`
	Unlocked bool    `json:"unlocked"`
	Progress float64 `json:"progress"`
}

type progressResponse struct {
	TotalCards      int                   `json:"total_cards"`
	NewCards        int                   `json:"new_cards"`
	LearningCards   int                   `json:"learning_cards"`
	MatureCards     int                   `json:"mature_cards"`
	DueToday        int                   `json:"due_today"`
	TotalReviews    int                   `json:"total_reviews"`
	AccuracyPercent float64               `json:"accuracy_percent"`
	CurrentStreak   int                   `json:"current_streak"`
	LongestStreak   int                   `json:"longest_streak"`
	Achievements    []achievementResponse `json:"achievements"`
}

func newProgressResponse(s *entities.ProgressSummary) progressResponse {
	resp := progressResponse{
		TotalCards:      s.TotalCards,
		NewCards:        s.NewCards,
		LearningCards:   s.LearningCards,
		MatureCards:     s.MatureCards,
		DueToday:        s.DueToday,
		TotalReviews:    s.TotalReviews,
		AccuracyPercent: s.AccuracyPercent,
		CurrentStreak:   s.CurrentStreak,
		LongestStreak:   s.LongestStreak,
		Achievements:    make([]achievementResponse, 0, len(s.Achievements)),
	}
	for _, a := range s.Achievements {
		resp.Achievements = append(resp.Achievements, achievementResponse{
			Code:     string(a.Code),
			Title:    a.Title,
			Target:   a.Target,
			Current:  a.Current,
			Unlocked: a.Unlocked,
			Progress: a.Progress,
		})
	}
	return resp
}

type userRequest struct {
	ChatID       int64  `json:"chat_id" validate:"gte=0"`
	FirstName    string `json:"first_name" validate:"max=255"`
	LastName     string `json:"last_name" validate:"max=255"`
	Username     string `json:"username" validate:"max=255"`
	LanguageCode string `json:"language_code" validate:"omitempty,max=16"`
}

type userResponse struct {
	ID           int64     `json:"id"`
	ChatID       int64     `json:"chat_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Username     string    `json:"username"`
	LanguageCode string    `json:"language_code"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func newUserResponse(u *entities.User) userResponse {
	return userResponse{
		ID:           u.ID,
		ChatID:       u.ChatID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Username:     u.Username,
		LanguageCode: u.LanguageCode,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}
