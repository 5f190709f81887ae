package availability

import "errors"

var (
	ErrInvalidDuration = errors.New("requested duration must be positive")
	ErrInvalidDate     = errors.New("invalid date, want YYYY-MM-DD")
)
