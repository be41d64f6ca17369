package rubric

import "errors"

var (
	ErrInvalidCriterion = errors.New("invalid criterion")
	ErrOutOfRange       = errors.New("score out of range")
)
