package schedule

import (
	"testing"
	"time"

	"salonflow/models"
)

func testBarber() models.Barber {
	return models.Barber{
		ID:     "b1",
		Active: true,
		WorkingWindows: []models.WorkingWindow{
			{Weekday: time.Monday, StartMinute: 600, EndMinute: 1140, Active: true}, // 10:00-19:00
		},
	}
}

func TestDayWindow(t *testing.T) {
	b := testBarber()

	window, ok, err := DayWindow(b, day, time.UTC)
	if err != nil || !ok {
		t.Fatalf("expected a Monday window, ok=%v err=%v", ok, err)
	}
	if !window.Start.Equal(at(10, 0)) || !window.End.Equal(at(19, 0)) {
		t.Fatalf("unexpected window %s", window)
	}

	// Tuesday has no entry: empty day, no error.
	if _, ok, err := DayWindow(b, day.AddDate(0, 0, 1), time.UTC); ok || err != nil {
		t.Fatalf("expected no Tuesday window, ok=%v err=%v", ok, err)
	}

	// Inactive entry behaves like an absent one.
	b.WorkingWindows[0].Active = false
	if _, ok, err := DayWindow(b, day, time.UTC); ok || err != nil {
		t.Fatalf("expected inactive window to resolve to nothing, ok=%v err=%v", ok, err)
	}
}

func TestDayWindow_InconsistentRow(t *testing.T) {
	b := testBarber()
	b.WorkingWindows[0].EndMinute = 540 // 9:00, before the 10:00 start

	_, ok, err := DayWindow(b, day, time.UTC)
	if ok {
		t.Fatal("inconsistent window must not produce an interval")
	}
	if err == nil {
		t.Fatal("inconsistent window must surface a diagnostic")
	}
}

func TestLunchBreakSource(t *testing.T) {
	src := LunchBreakSource{Break: models.LunchBreak{StartMinute: 720, EndMinute: 780, Active: true}}

	blocked := src.Blocked(day, time.UTC)
	if len(blocked) != 1 {
		t.Fatalf("expected 1 blocked interval, got %d", len(blocked))
	}
	if blocked[0].Reason != ReasonDuringBreak {
		t.Fatalf("unexpected reason %q", blocked[0].Reason)
	}
	if !blocked[0].Interval.Start.Equal(at(12, 0)) || !blocked[0].Interval.End.Equal(at(13, 0)) {
		t.Fatalf("unexpected interval %s", blocked[0].Interval)
	}

	// The break recurs: any other date resolves to the same time-of-day range.
	next := src.Blocked(day.AddDate(0, 0, 3), time.UTC)
	if len(next) != 1 || next[0].Interval.Start.Hour() != 12 {
		t.Fatalf("expected the break on every day, got %v", next)
	}

	src.Break.Active = false
	if got := src.Blocked(day, time.UTC); got != nil {
		t.Fatalf("inactive break must not block, got %v", got)
	}
}

func TestCustomBlockSource(t *testing.T) {
	block := models.CustomBlock{
		ID: "cb1", BarberID: "b1", Date: "2026-01-05",
		StartMinute: 900, EndMinute: 960, // 15:00-16:00
		Kind: models.BlockUnavailable,
	}
	src := CustomBlockSource{Block: block}

	if got := src.Blocked(day, time.UTC); len(got) != 1 || got[0].Reason != ReasonDuringCustomBlock {
		t.Fatalf("expected one custom-block interval, got %v", got)
	}
	if got := src.Blocked(day.AddDate(0, 0, 1), time.UTC); got != nil {
		t.Fatalf("block on another date must not resolve, got %v", got)
	}

	// Display-only kinds never remove availability.
	src.Block.Kind = models.BlockReminder
	if got := src.Blocked(day, time.UTC); got != nil {
		t.Fatalf("non-blocking kind must not resolve, got %v", got)
	}
}

func TestAppointmentSource(t *testing.T) {
	appt := models.Appointment{
		ID: "a1", BarberID: "b1",
		Start:  at(14, 0),
		End:    at(14, 50), // includes buffer
		Status: models.StatusScheduled,
	}
	src := AppointmentSource{Appointment: appt}

	got := src.Blocked(day, time.UTC)
	if len(got) != 1 || got[0].Reason != ReasonOverlapsAppointment || got[0].AppointmentID != "a1" {
		t.Fatalf("unexpected resolution %v", got)
	}

	if got := src.Blocked(day.AddDate(0, 0, 1), time.UTC); got != nil {
		t.Fatalf("appointment on another date must not resolve, got %v", got)
	}

	src.Appointment.Status = models.StatusCancelled
	if got := src.Blocked(day, time.UTC); got != nil {
		t.Fatalf("cancelled appointment must never block, got %v", got)
	}
}

func TestResolveBlocked_DropsInvertedRecords(t *testing.T) {
	sources := []BlockSource{
		LunchBreakSource{Break: models.LunchBreak{StartMinute: 780, EndMinute: 720, Active: true}}, // inverted
		AppointmentSource{Appointment: models.Appointment{
			ID: "a1", Start: at(14, 0), End: at(15, 0), Status: models.StatusScheduled,
		}},
	}

	blocked := ResolveBlocked(day, time.UTC, sources, nil)
	if len(blocked) != 1 {
		t.Fatalf("expected only the valid record to survive, got %d", len(blocked))
	}
	if blocked[0].AppointmentID != "a1" {
		t.Fatalf("unexpected survivor %v", blocked[0])
	}
}
