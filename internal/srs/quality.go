package srs

import "fmt"

// Quality is the recall grade a user gives a card, 0 (blackout) to 5 (perfect).
type Quality int

const (
	QualityBlackout Quality = 0
	QualityWrong    Quality = 1
	QualityAlmost   Quality = 2
	QualityHard     Quality = 3
	QualityGood     Quality = 4
	QualityPerfect  Quality = 5
)

const (
	minQuality       = QualityBlackout
	maxQuality       = QualityPerfect
	defaultPassGrade = QualityHard
)

var qualityNames = [...]string{
	QualityBlackout: "blackout",
	QualityWrong:    "wrong",
	QualityAlmost:   "almost",
	QualityHard:     "hard",
	QualityGood:     "good",
	QualityPerfect:  "perfect",
}

// ParseQuality converts an untrusted integer into a Quality.
func ParseQuality(v int) (Quality, error) {
	q := Quality(v)
	if !q.IsValid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidQuality, v)
	}
	return q, nil
}

func (q Quality) IsValid() bool {
	return q >= minQuality && q <= maxQuality
}

// Passed reports whether q counts as a successful recall under the default threshold.
func (q Quality) Passed() bool {
	return q >= defaultPassGrade
}

func (q Quality) String() string {
	if q.IsValid() {
		return qualityNames[q]
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}
