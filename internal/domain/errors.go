package domain

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDegenerateSpacing = errors.New("pointer count exceeds number of labels")
	ErrPresetNotFound    = errors.New("preset not found")
)
