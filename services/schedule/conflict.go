package schedule

// ConflictResult is the outcome of validating a proposed interval. A
// rejection is business logic, not an error: callers branch on OK and Reason.
type ConflictResult struct {
	OK            bool
	Reason        Reason
	AppointmentID string // offending appointment when Reason is ReasonOverlapsAppointment
}

// Accept is the positive ConflictResult.
func Accept() ConflictResult {
	return ConflictResult{OK: true}
}

// Reject builds a negative ConflictResult.
func Reject(reason Reason) ConflictResult {
	return ConflictResult{Reason: reason}
}

// CheckConflict validates proposed against one day's window and blocked set.
// window == nil means the barber does not work that day. When
// excludeAppointmentID is set, blocked entries belonging to that appointment
// are ignored so an edit does not conflict with itself.
//
// Uses the same overlap primitive as AvailableSlots; every slot returned by
// the generator passes this check by construction.
func CheckConflict(window *Interval, blocked []BlockedInterval, proposed Interval, excludeAppointmentID string) ConflictResult {
	if window == nil || !window.Contains(proposed) {
		return Reject(ReasonOutsideWorkingHours)
	}
	for _, b := range blocked {
		if excludeAppointmentID != "" && b.AppointmentID == excludeAppointmentID {
			continue
		}
		if proposed.Overlaps(b.Interval) {
			return ConflictResult{Reason: b.Reason, AppointmentID: b.AppointmentID}
		}
	}
	return Accept()
}
