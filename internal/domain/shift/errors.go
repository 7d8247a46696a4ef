package shift

import "errors"

var (
	ErrShiftNotFound   = errors.New("shift definition not found")
	ErrShiftNameExists = errors.New("shift name already exists")
)
