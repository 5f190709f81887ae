package schedule

import (
	"testing"
	"time"

	"salonflow/models"
)

const grain = 30 * time.Minute

// Monday 10:00-19:00, no blocks, 30-minute service at 30-minute granularity:
// 18 slots from 10:00 through 18:30. 19:00 itself is excluded because it
// starts at closing.
func TestAvailableSlots_FullOpenDay(t *testing.T) {
	window := iv(10, 0, 19, 0)

	slots := AvailableSlots(window, nil, grain, grain, time.Time{})
	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}
	if !slots[0].Equal(at(10, 0)) {
		t.Fatalf("expected first slot 10:00, got %s", slots[0].Format(time.RFC3339))
	}
	if !slots[17].Equal(at(18, 30)) {
		t.Fatalf("expected last slot 18:30, got %s", slots[17].Format(time.RFC3339))
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i].After(slots[i-1]) {
			t.Fatalf("slots not in ascending order at index %d", i)
		}
	}
}

func TestAvailableSlots_LunchBreakRemovesTwo(t *testing.T) {
	window := iv(10, 0, 19, 0)
	blocked := ResolveBlocked(day, time.UTC, []BlockSource{
		LunchBreakSource{Break: models.LunchBreak{StartMinute: 720, EndMinute: 780, Active: true}},
	}, nil)

	slots := AvailableSlots(window, blocked, grain, grain, time.Time{})
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Equal(at(12, 0)) || s.Equal(at(12, 30)) {
			t.Fatalf("slot %s falls inside the lunch break", s.Format(time.RFC3339))
		}
	}
}

// An appointment booked 14:00-14:50 (buffer included) removes the 14:00 and
// 14:30 candidates. 13:30 survives because [13:30, 14:00) only touches the
// appointment, and 15:00 is past its end.
func TestAvailableSlots_AppointmentWithBuffer(t *testing.T) {
	window := iv(10, 0, 19, 0)
	blocked := ResolveBlocked(day, time.UTC, []BlockSource{
		AppointmentSource{Appointment: models.Appointment{
			ID: "a1", Start: at(14, 0), End: at(14, 50), Status: models.StatusScheduled,
		}},
	}, nil)

	slots := AvailableSlots(window, blocked, grain, grain, time.Time{})

	want := map[string]bool{}
	for _, s := range slots {
		want[s.Format("15:04")] = true
	}
	if want["14:00"] || want["14:30"] {
		t.Fatalf("slots overlapping the appointment must be excluded: %v", want)
	}
	if !want["13:30"] {
		t.Fatal("13:30 ends exactly at the appointment start and must be kept")
	}
	if !want["15:00"] {
		t.Fatal("15:00 starts after the buffered end and must be kept")
	}
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}
}

func TestAvailableSlots_NoPastSlotsToday(t *testing.T) {
	window := iv(10, 0, 19, 0)
	now := at(14, 10)

	slots := AvailableSlots(window, nil, grain, grain, now)
	if len(slots) == 0 {
		t.Fatal("expected afternoon slots")
	}
	if !slots[0].Equal(at(14, 30)) {
		t.Fatalf("expected first slot 14:30, got %s", slots[0].Format(time.RFC3339))
	}
	for _, s := range slots {
		if s.Before(now) {
			t.Fatalf("slot %s is in the past", s.Format(time.RFC3339))
		}
	}
}

func TestAvailableSlots_NoSlotCrossesClosing(t *testing.T) {
	window := iv(10, 0, 19, 0)
	duration := 75 * time.Minute

	slots := AvailableSlots(window, nil, duration, grain, time.Time{})
	for _, s := range slots {
		if s.Add(duration).After(window.End) {
			t.Fatalf("slot %s would overrun closing time", s.Format(time.RFC3339))
		}
	}
	if len(slots) == 0 {
		t.Fatal("expected slots for a 75-minute service")
	}
}

func TestAvailableSlots_InvalidInputs(t *testing.T) {
	window := iv(10, 0, 19, 0)
	if got := AvailableSlots(window, nil, 0, grain, time.Time{}); got != nil {
		t.Fatalf("non-positive duration must yield nothing, got %v", got)
	}
	if got := AvailableSlots(window, nil, grain, 0, time.Time{}); got != nil {
		t.Fatalf("non-positive step must yield nothing, got %v", got)
	}
}

// Every generated slot must pass the conflict check built from the same
// blocked set: the generator and the checker share one overlap primitive and
// must never diverge.
func TestAvailableSlots_NeverConflict(t *testing.T) {
	window := iv(10, 0, 19, 0)
	blocked := ResolveBlocked(day, time.UTC, []BlockSource{
		LunchBreakSource{Break: models.LunchBreak{StartMinute: 720, EndMinute: 780, Active: true}},
		CustomBlockSource{Block: models.CustomBlock{
			Date: "2026-01-05", StartMinute: 990, EndMinute: 1020, Kind: models.BlockUnavailable,
		}},
		AppointmentSource{Appointment: models.Appointment{
			ID: "a1", Start: at(14, 0), End: at(14, 50), Status: models.StatusScheduled,
		}},
	}, nil)

	duration := 45 * time.Minute
	for _, s := range AvailableSlots(window, blocked, duration, grain, time.Time{}) {
		proposed := Interval{Start: s, End: s.Add(duration)}
		if res := CheckConflict(&window, blocked, proposed, ""); !res.OK {
			t.Fatalf("generated slot %s rejected with %q", s.Format(time.RFC3339), res.Reason)
		}
	}
}

func TestAvailableSlots_Idempotent(t *testing.T) {
	window := iv(10, 0, 19, 0)
	blocked := ResolveBlocked(day, time.UTC, []BlockSource{
		AppointmentSource{Appointment: models.Appointment{
			ID: "a1", Start: at(11, 0), End: at(12, 0), Status: models.StatusScheduled,
		}},
	}, nil)

	first := AvailableSlots(window, blocked, grain, grain, time.Time{})
	second := AvailableSlots(window, blocked, grain, grain, time.Time{})
	if len(first) != len(second) {
		t.Fatalf("idempotence violated: %d vs %d slots", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Fatalf("idempotence violated at index %d", i)
		}
	}
}
