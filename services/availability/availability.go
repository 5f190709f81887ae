package availability

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	apptRepo "salonflow/database/repository/appointment"
	barberRepo "salonflow/database/repository/barber"
	blockRepo "salonflow/database/repository/block"
	"salonflow/models"
	"salonflow/services/schedule"
	"salonflow/utils"
)

// Service answers the caller-facing scheduling questions: which start times
// are bookable, does a proposed interval conflict, and what does a day look
// like. It loads one consistent snapshot per call and hands it to the pure
// engine in services/schedule; it performs no writes.
type Service interface {
	GetAvailableSlots(ctx context.Context, barberID, date string, durationMin int) ([]time.Time, error)
	CheckConflict(ctx context.Context, barberID string, proposed schedule.Interval, excludeAppointmentID string) (schedule.ConflictResult, error)
	DayCalendar(ctx context.Context, date string) ([]BarberDayView, error)
	OccupancyDays(ctx context.Context, date string) ([]schedule.BarberDay, error)
}

// BarberDayView is the calendar feed for one barber on one date.
type BarberDayView struct {
	BarberID     string               `json:"barberId"`
	BarberName   string               `json:"barberName"`
	Working      bool                 `json:"working"`
	WindowStart  *time.Time           `json:"windowStart,omitempty"`
	WindowEnd    *time.Time           `json:"windowEnd,omitempty"`
	Appointments []models.Appointment `json:"appointments"`
	Blocks       []models.CustomBlock `json:"blocks"`
}

type DefaultAvailabilityService struct {
	BarberRepo  barberRepo.BarberRepository
	BlockRepo   blockRepo.BlockRepository
	ApptRepo    apptRepo.AppointmentRepository
	Granularity time.Duration
	Location    *time.Location

	// Now is swappable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// parseDate validates the wire date format. Malformed dates are the caller's
// fault and surface immediately.
func (s *DefaultAvailabilityService) parseDate(date string) (time.Time, error) {
	d, err := time.ParseInLocation(schedule.DateLayout, date, s.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return d, nil
}

// daySnapshot loads everything that blocks a barber's date: the recurring
// lunch break, custom blocks and committed appointments. A window row with an
// inverted range is logged and treated as a non-working day rather than
// poisoning the query.
func (s *DefaultAvailabilityService) daySnapshot(ctx context.Context, barber *models.Barber, date time.Time) (*schedule.Interval, []schedule.BlockedInterval, error) {
	logger := utils.GetLogger()

	window, working, err := schedule.DayWindow(*barber, date, s.Location)
	if err != nil {
		logger.Warn("rejecting inconsistent working window",
			zap.String("barberId", barber.ID), zap.Error(err))
		working = false
	}

	var sources []schedule.BlockSource
	if barber.LunchBreak != nil {
		sources = append(sources, schedule.LunchBreakSource{Break: *barber.LunchBreak})
	}

	dateStr := date.In(s.Location).Format(schedule.DateLayout)
	blocks, err := s.BlockRepo.GetByBarberAndDate(ctx, barber.ID, dateStr)
	if err != nil {
		return nil, nil, fmt.Errorf("load custom blocks: %w", err)
	}
	for _, b := range blocks {
		sources = append(sources, schedule.CustomBlockSource{Block: b})
	}

	dayStart := schedule.AtMinute(date, 0, s.Location)
	appts, err := s.ApptRepo.ListByBarberAndRange(ctx, barber.ID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, nil, fmt.Errorf("load appointments: %w", err)
	}
	for _, a := range appts {
		sources = append(sources, schedule.AppointmentSource{Appointment: a})
	}

	blocked := schedule.ResolveBlocked(date, s.Location, sources, logger)
	if !working {
		return nil, blocked, nil
	}
	return &window, blocked, nil
}

// GetAvailableSlots returns the ordered bookable start times for a service of
// durationMin minutes. An empty result means fully booked (or a non-working
// day) and is not an error.
func (s *DefaultAvailabilityService) GetAvailableSlots(ctx context.Context, barberID, date string, durationMin int) ([]time.Time, error) {
	if durationMin <= 0 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidDuration, durationMin)
	}
	day, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}
	barber, err := s.BarberRepo.GetByID(ctx, barberID)
	if err != nil {
		return nil, err
	}

	window, blocked, err := s.daySnapshot(ctx, barber, day)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return nil, nil
	}

	// Suppress past start times only when generating for today.
	var now time.Time
	if s.now().In(s.Location).Format(schedule.DateLayout) == date {
		now = s.now()
	}

	duration := time.Duration(durationMin) * time.Minute
	return schedule.AvailableSlots(*window, blocked, duration, s.Granularity, now), nil
}

// CheckConflict validates a proposed interval for a barber. A rejection is a
// normal outcome, not an error. An interval spanning midnight resolves the
// blocked sets of both days.
func (s *DefaultAvailabilityService) CheckConflict(ctx context.Context, barberID string, proposed schedule.Interval, excludeAppointmentID string) (schedule.ConflictResult, error) {
	if !proposed.End.After(proposed.Start) {
		return schedule.ConflictResult{}, fmt.Errorf("%w: proposed interval", schedule.ErrInvertedInterval)
	}
	barber, err := s.BarberRepo.GetByID(ctx, barberID)
	if err != nil {
		return schedule.ConflictResult{}, err
	}

	startDay := proposed.Start.In(s.Location)
	window, blocked, err := s.daySnapshot(ctx, barber, startDay)
	if err != nil {
		return schedule.ConflictResult{}, err
	}

	endDay := proposed.End.In(s.Location)
	if endDay.Format(schedule.DateLayout) != startDay.Format(schedule.DateLayout) {
		_, more, err := s.daySnapshot(ctx, barber, endDay)
		if err != nil {
			return schedule.ConflictResult{}, err
		}
		blocked = append(blocked, more...)
	}

	return schedule.CheckConflict(window, blocked, proposed, excludeAppointmentID), nil
}

// DayCalendar assembles the rendering feed for every active barber on one
// date.
func (s *DefaultAvailabilityService) DayCalendar(ctx context.Context, date string) ([]BarberDayView, error) {
	day, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}
	barbers, err := s.BarberRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	dayStart := schedule.AtMinute(day, 0, s.Location)
	views := make([]BarberDayView, 0, len(barbers))
	for _, b := range barbers {
		view := BarberDayView{BarberID: b.ID, BarberName: b.FullName}

		window, working, werr := schedule.DayWindow(b, day, s.Location)
		if werr != nil {
			utils.GetLogger().Warn("rejecting inconsistent working window",
				zap.String("barberId", b.ID), zap.Error(werr))
			working = false
		}
		if working {
			view.Working = true
			view.WindowStart = &window.Start
			view.WindowEnd = &window.End
		}

		appts, err := s.ApptRepo.ListByBarberAndRange(ctx, b.ID, dayStart, dayStart.AddDate(0, 0, 1))
		if err != nil {
			return nil, fmt.Errorf("load appointments: %w", err)
		}
		view.Appointments = appts

		blocks, err := s.BlockRepo.GetByBarberAndDate(ctx, b.ID, date)
		if err != nil {
			return nil, fmt.Errorf("load custom blocks: %w", err)
		}
		view.Blocks = blocks

		views = append(views, view)
	}
	return views, nil
}

// OccupancyDays builds the per-barber capacity model for one date, used by
// the statistics aggregation. It routes through the same window and blocking
// primitives as slot generation so "what's bookable" and "what's reported as
// occupied" can never drift apart.
func (s *DefaultAvailabilityService) OccupancyDays(ctx context.Context, date string) ([]schedule.BarberDay, error) {
	day, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}
	barbers, err := s.BarberRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	dayStart := schedule.AtMinute(day, 0, s.Location)

	var days []schedule.BarberDay
	for _, b := range barbers {
		window, working, werr := schedule.DayWindow(b, day, s.Location)
		if werr != nil {
			logger.Warn("rejecting inconsistent working window",
				zap.String("barberId", b.ID), zap.Error(werr))
			continue
		}
		if !working {
			continue
		}
		bd := schedule.BarberDay{Window: window}

		// Capacity-reducing blocks: the lunch break plus custom blocks of a
		// blocking kind.
		var sources []schedule.BlockSource
		if b.LunchBreak != nil {
			sources = append(sources, schedule.LunchBreakSource{Break: *b.LunchBreak})
		}
		blocks, err := s.BlockRepo.GetByBarberAndDate(ctx, b.ID, date)
		if err != nil {
			return nil, fmt.Errorf("load custom blocks: %w", err)
		}
		for _, cb := range blocks {
			sources = append(sources, schedule.CustomBlockSource{Block: cb})
		}
		for _, entry := range schedule.ResolveBlocked(day, s.Location, sources, logger) {
			bd.Blocks = append(bd.Blocks, entry.Interval)
		}

		appts, err := s.ApptRepo.ListByBarberAndRange(ctx, b.ID, dayStart, dayStart.AddDate(0, 0, 1))
		if err != nil {
			return nil, fmt.Errorf("load appointments: %w", err)
		}
		for _, entry := range schedule.ResolveBlocked(day, s.Location, apptSources(appts), logger) {
			bd.Bookings = append(bd.Bookings, entry.Interval)
		}

		days = append(days, bd)
	}
	return days, nil
}

func apptSources(appts []models.Appointment) []schedule.BlockSource {
	sources := make([]schedule.BlockSource, 0, len(appts))
	for _, a := range appts {
		sources = append(sources, schedule.AppointmentSource{Appointment: a})
	}
	return sources
}
