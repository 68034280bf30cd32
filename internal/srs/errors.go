package srs

import "errors"

var (
	ErrInvalidQuality = errors.New("srs: quality must be between 0 and 5")
	ErrInvalidState   = errors.New("srs: invalid review state")
	ErrInvalidParams  = errors.New("srs: invalid scheduler params")
)
