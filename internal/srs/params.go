package srs

import "fmt"

// IntervalLimit is the longest interval the scheduler ever produces, about a
// century. Due dates beyond it do not fit the storage column types.
const IntervalLimit = 36500

// Params tunes the scheduler. The zero value is not usable; start from DefaultParams.
type Params struct {
	InitialEase     float64 // ease factor of a never-reviewed card
	MinimumEase     float64 // lower clamp applied after every update
	PassThreshold   Quality // ratings below this reset the repetition count
	FirstInterval   int     // days after the first successful review
	SecondInterval  int     // days after the second successful review
	MaximumInterval int     // 0 means IntervalLimit
}

func DefaultParams() Params {
	return Params{
		InitialEase:     2.5,
		MinimumEase:     1.3,
		PassThreshold:   defaultPassGrade,
		FirstInterval:   1,
		SecondInterval:  6,
		MaximumInterval: IntervalLimit,
	}
}

// Validate checks that p describes a scheduler that can uphold its invariants.
func (p Params) Validate() error {
	switch {
	case p.MinimumEase <= 0:
		return fmt.Errorf("%w: minimum ease %.2f must be positive", ErrInvalidParams, p.MinimumEase)
	case p.InitialEase < p.MinimumEase:
		return fmt.Errorf("%w: initial ease %.2f below minimum %.2f", ErrInvalidParams, p.InitialEase, p.MinimumEase)
	case !p.PassThreshold.IsValid():
		return fmt.Errorf("%w: pass threshold %d", ErrInvalidParams, p.PassThreshold)
	case p.FirstInterval < 1 || p.SecondInterval < p.FirstInterval:
		return fmt.Errorf("%w: intervals %d/%d", ErrInvalidParams, p.FirstInterval, p.SecondInterval)
	case p.MaximumInterval < 0 || p.MaximumInterval > IntervalLimit:
		return fmt.Errorf("%w: maximum interval %d outside 0..%d", ErrInvalidParams, p.MaximumInterval, IntervalLimit)
	case p.MaximumInterval > 0 && p.MaximumInterval < p.SecondInterval:
		return fmt.Errorf("%w: maximum interval %d shorter than second interval %d",
			ErrInvalidParams, p.MaximumInterval, p.SecondInterval)
	}
	return nil
}
