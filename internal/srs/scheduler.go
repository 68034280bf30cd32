// Package srs implements the SM-2 variant used to schedule flashcard reviews.
//
// The package is pure: Next never performs I/O and never reads the wall clock,
// so the same state, quality and time always yield the same result.
package srs

import (
	"fmt"
	"math"
	"time"
)

// State is the review state of one card for one user.
type State struct {
	EaseFactor     float64
	Repetitions    int // consecutive passing reviews since the last lapse
	IntervalDays   int
	DueDate        time.Time
	LastReviewedAt time.Time
}

// Reviewed reports whether the state has gone through at least one rating.
func (s State) Reviewed() bool {
	return !s.LastReviewedAt.IsZero()
}

// Scheduler applies ratings to review states.
type Scheduler struct {
	params Params
}

func NewScheduler(params Params) (*Scheduler, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Scheduler{params: params}, nil
}

// Default returns a scheduler configured with DefaultParams.
func Default() *Scheduler {
	return &Scheduler{params: DefaultParams()}
}

func (s *Scheduler) Params() Params {
	return s.params
}

// NewState returns the state a card has before its first rating.
func (s *Scheduler) NewState() State {
	return State{EaseFactor: s.params.InitialEase}
}

// Next computes the state that follows rating q at time now.
func (s *Scheduler) Next(state State, q Quality, now time.Time) (State, error) {
	if !q.IsValid() {
		return State{}, fmt.Errorf("%w: got %d", ErrInvalidQuality, int(q))
	}
	if state.Repetitions < 0 || state.IntervalDays < 0 {
		return State{}, fmt.Errorf("%w: repetitions=%d interval=%d",
			ErrInvalidState, state.Repetitions, state.IntervalDays)
	}

	ease := s.clampEase(state.EaseFactor)
	next := State{EaseFactor: ease, Repetitions: state.Repetitions}

	if q < s.params.PassThreshold {
		next.Repetitions = 0
		next.IntervalDays = s.params.FirstInterval
	} else {
		switch state.Repetitions {
		case 0:
			next.IntervalDays = s.params.FirstInterval
		case 1:
			next.IntervalDays = s.params.SecondInterval
		default:
			days := math.Round(float64(state.IntervalDays) * ease)
			next.IntervalDays = int(math.Min(days, float64(s.maxInterval())))
		}
		next.Repetitions++
	}

	if limit := s.maxInterval(); next.IntervalDays > limit {
		next.IntervalDays = limit
	}
	// A zero interval after a pass would make the card due immediately forever.
	if next.IntervalDays < s.params.FirstInterval {
		next.IntervalDays = s.params.FirstInterval
	}

	next.EaseFactor = s.clampEase(ease + easeDelta(q))
	next.LastReviewedAt = now
	next.DueDate = DueDate(now, next.IntervalDays)

	return next, nil
}

// DueDate returns the date a card reviewed at reviewedAt becomes due again.
func DueDate(reviewedAt time.Time, intervalDays int) time.Time {
	return reviewedAt.AddDate(0, 0, intervalDays)
}

// easeDelta is the SM-2 ease adjustment: 0.1 - (5-q)(0.08 + (5-q)0.02).
func easeDelta(q Quality) float64 {
	d := float64(maxQuality - q)
	return 0.1 - d*(0.08+d*0.02)
}

func (s *Scheduler) maxInterval() int {
	if s.params.MaximumInterval > 0 {
		return s.params.MaximumInterval
	}
	return IntervalLimit
}

func (s *Scheduler) clampEase(ease float64) float64 {
	return math.Max(s.params.MinimumEase, ease)
}
