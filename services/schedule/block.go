package schedule

import (
	"time"

	"go.uber.org/zap"

	"salonflow/models"
)

// Reason tags why a proposed interval is not bookable.
type Reason string

const (
	ReasonOutsideWorkingHours Reason = "outside-working-hours"
	ReasonDuringBreak         Reason = "during-break"
	ReasonDuringCustomBlock   Reason = "during-custom-block"
	ReasonOverlapsAppointment Reason = "overlaps-appointment"
)

// BlockedInterval is one resolved entry of a barber's blocked set for a day.
// AppointmentID is set only when the block comes from an appointment, so edit
// validation can exclude the appointment's own interval.
type BlockedInterval struct {
	Interval      Interval
	Reason        Reason
	AppointmentID string
}

// BlockSource is anything that removes availability from a working day:
// the recurring lunch break, an ad hoc custom block, or a committed
// appointment. Sources resolve to zero or more candidate entries clipped to
// the given date; entries from different sources may overlap each other.
type BlockSource interface {
	Blocked(date time.Time, loc *time.Location) []BlockedInterval
}

// LunchBreakSource resolves a barber's recurring break. It applies to every
// working day when active, independent of weekday.
type LunchBreakSource struct {
	Break models.LunchBreak
}

func (s LunchBreakSource) Blocked(date time.Time, loc *time.Location) []BlockedInterval {
	if !s.Break.Active {
		return nil
	}
	return []BlockedInterval{{
		Interval: Interval{
			Start: AtMinute(date, s.Break.StartMinute, loc),
			End:   AtMinute(date, s.Break.EndMinute, loc),
		},
		Reason: ReasonDuringBreak,
	}}
}

// CustomBlockSource resolves a one-off block tied to a specific date.
// Kinds that do not block availability (calendar annotations) resolve to
// nothing.
type CustomBlockSource struct {
	Block models.CustomBlock
}

func (s CustomBlockSource) Blocked(date time.Time, loc *time.Location) []BlockedInterval {
	if s.Block.Date != date.In(loc).Format(DateLayout) {
		return nil
	}
	if !s.Block.Kind.BlocksAvailability() {
		return nil
	}
	return []BlockedInterval{{
		Interval: Interval{
			Start: AtMinute(date, s.Block.StartMinute, loc),
			End:   AtMinute(date, s.Block.EndMinute, loc),
		},
		Reason: ReasonDuringCustomBlock,
	}}
}

// AppointmentSource resolves a committed appointment. The stored End already
// includes the trailing buffer, so the next booking cannot start inside it.
// Cancelled appointments never block.
type AppointmentSource struct {
	Appointment models.Appointment
}

func (s AppointmentSource) Blocked(date time.Time, loc *time.Location) []BlockedInterval {
	if s.Appointment.Status == models.StatusCancelled {
		return nil
	}
	if s.Appointment.Start.In(loc).Format(DateLayout) != date.In(loc).Format(DateLayout) {
		return nil
	}
	return []BlockedInterval{{
		Interval:      Interval{Start: s.Appointment.Start, End: s.Appointment.End},
		Reason:        ReasonOverlapsAppointment,
		AppointmentID: s.Appointment.ID,
	}}
}

// ResolveBlocked flattens all sources into one day's blocked set. Entries
// with inverted ranges are dropped and logged; a bad record must not sink the
// whole query.
func ResolveBlocked(date time.Time, loc *time.Location, sources []BlockSource, logger *zap.Logger) []BlockedInterval {
	if logger == nil {
		logger = zap.NewNop()
	}
	var blocked []BlockedInterval
	for _, src := range sources {
		for _, b := range src.Blocked(date, loc) {
			if !b.Interval.End.After(b.Interval.Start) {
				logger.Warn("dropping inconsistent blocked record",
					zap.String("reason", string(b.Reason)),
					zap.String("appointmentId", b.AppointmentID),
					zap.Time("start", b.Interval.Start),
					zap.Time("end", b.Interval.End))
				continue
			}
			blocked = append(blocked, b)
		}
	}
	return blocked
}
