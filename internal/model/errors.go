package model

import "errors"

var (
	ErrOutcomeOutOfRange   = errors.New("outcome must be between 0 and 36")
	ErrThresholdOutOfRange = errors.New("threshold out of range")
	ErrSessionNotFound     = errors.New("session not found")
)
