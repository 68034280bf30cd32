package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Callback action constants.
const (
	actionShow   = "show"
	actionRate   = "rate"
	actionReview = "review"
	actionStats  = "stats"
)

var errBadCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func (cd callbackData) flashcardID() (uuid.UUID, error) {
	if len(cd.Params) == 0 {
		return uuid.Nil, errBadCallback
	}
	id, err := uuid.Parse(cd.Params[0])
	if err != nil {
		return uuid.Nil, errBadCallback
	}
	return id, nil
}

// rating returns the flashcard and quality of a "rate:<id>:<q>" callback.
// The quality range is left to the scheduler.
func (cd callbackData) rating() (uuid.UUID, int, error) {
	if len(cd.Params) != 2 {
		return uuid.Nil, 0, errBadCallback
	}
	id, err := cd.flashcardID()
	if err != nil {
		return uuid.Nil, 0, err
	}
	q, err := strconv.Atoi(cd.Params[1])
	if err != nil {
		return uuid.Nil, 0, errBadCallback
	}
	return id, q, nil
}

func buildShowCallback(id uuid.UUID) string {
	return callbackData{Action: actionShow, Params: []string{id.String()}}.encode()
}

func buildRateCallback(id uuid.UUID, quality int) string {
	return callbackData{
		Action: actionRate,
		Params: []string{id.String(), strconv.Itoa(quality)},
	}.encode()
}

func buildReviewCallback() string {
	return actionReview
}

func buildStatsCallback() string {
	return actionStats
}
