package domain

import "errors"

// ErrInvalid marks input that fails validation. Callers wrap it with context
// and match it with errors.Is.
var ErrInvalid = errors.New("invalid input")
