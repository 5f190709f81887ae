package appointment

import (
	"errors"
	"fmt"

	"salonflow/services/schedule"
)

var (
	ErrNoServices     = errors.New("appointment needs at least one service")
	ErrUnknownService = errors.New("unknown or inactive service")
	ErrEditCancelled  = errors.New("cannot edit a cancelled appointment")
)

// ConflictError reports that the proposed time is not bookable. It is a
// business outcome of validation, carried as an error so the lifecycle
// methods have a single failure channel; callers branch on it with
// errors.As.
type ConflictError struct {
	Reason        schedule.Reason
	AppointmentID string
}

func (e *ConflictError) Error() string {
	if e.AppointmentID != "" {
		return fmt.Sprintf("conflict: %s (appointment %s)", e.Reason, e.AppointmentID)
	}
	return fmt.Sprintf("conflict: %s", e.Reason)
}
