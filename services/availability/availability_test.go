package availability

import (
	"context"
	"testing"
	"time"

	apptRepo "salonflow/database/repository/appointment"
	barberRepo "salonflow/database/repository/barber"
	"salonflow/models"
	"salonflow/services/schedule"
)

type fakeBarberRepo struct {
	barbers map[string]*models.Barber
}

func (f *fakeBarberRepo) Create(ctx context.Context, b *models.Barber) error { return nil }
func (f *fakeBarberRepo) GetByID(ctx context.Context, id string) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, barberRepo.ErrBarberNotFound
	}
	return b, nil
}
func (f *fakeBarberRepo) GetActive(ctx context.Context) ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range f.barbers {
		if b.Active {
			out = append(out, *b)
		}
	}
	return out, nil
}
func (f *fakeBarberRepo) List(ctx context.Context) ([]models.Barber, error) { return nil, nil }
func (f *fakeBarberRepo) Update(ctx context.Context, b *models.Barber) error { return nil }
func (f *fakeBarberRepo) Delete(ctx context.Context, id string) error        { return nil }
func (f *fakeBarberRepo) SetWorkingWindows(ctx context.Context, id string, w []models.WorkingWindow) error {
	return nil
}
func (f *fakeBarberRepo) SaveLunchBreak(ctx context.Context, id string, l models.LunchBreak) error {
	return nil
}
func (f *fakeBarberRepo) DeleteLunchBreak(ctx context.Context, id string) error { return nil }

type fakeBlockRepo struct {
	blocks []models.CustomBlock
}

func (f *fakeBlockRepo) Create(ctx context.Context, b *models.CustomBlock) error { return nil }
func (f *fakeBlockRepo) GetByID(ctx context.Context, id string) (*models.CustomBlock, error) {
	return nil, nil
}
func (f *fakeBlockRepo) GetByBarberAndDate(ctx context.Context, barberID, date string) ([]models.CustomBlock, error) {
	var out []models.CustomBlock
	for _, b := range f.blocks {
		if b.BarberID == barberID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeBlockRepo) GetByDate(ctx context.Context, date string) ([]models.CustomBlock, error) {
	return nil, nil
}
func (f *fakeBlockRepo) Update(ctx context.Context, b *models.CustomBlock) error { return nil }
func (f *fakeBlockRepo) Delete(ctx context.Context, id string) error             { return nil }

type fakeApptRepo struct {
	appts []models.Appointment
}

func (f *fakeApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == id {
			return &f.appts[i], nil
		}
	}
	return nil, apptRepo.ErrAppointmentNotFound
}
func (f *fakeApptRepo) ListByBarberAndRange(ctx context.Context, barberID string, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.BarberID == barberID && !a.Start.Before(from) && a.Start.Before(to) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeApptRepo) ListByRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	return f.appts, nil
}
func (f *fakeApptRepo) CreateIfFree(ctx context.Context, a *models.Appointment) error { return nil }
func (f *fakeApptRepo) UpdateIfFree(ctx context.Context, a *models.Appointment) error { return nil }
func (f *fakeApptRepo) UpdateStatus(ctx context.Context, id string, s models.AppointmentStatus) error {
	return nil
}
func (f *fakeApptRepo) SetPaid(ctx context.Context, id string, paid bool) error { return nil }
func (f *fakeApptRepo) Delete(ctx context.Context, id string) error             { return nil }

func mondayAt(h, m int) time.Time {
	return time.Date(2026, 1, 5, h, m, 0, 0, time.UTC)
}

func newTestService(appts []models.Appointment, blocks []models.CustomBlock) *DefaultAvailabilityService {
	barber := &models.Barber{
		ID: "b1", FullName: "Alex", Active: true,
		WorkingWindows: []models.WorkingWindow{
			{Weekday: time.Monday, StartMinute: 600, EndMinute: 1140, Active: true},
		},
		LunchBreak: &models.LunchBreak{StartMinute: 720, EndMinute: 780, Active: true},
	}
	return &DefaultAvailabilityService{
		BarberRepo:  &fakeBarberRepo{barbers: map[string]*models.Barber{"b1": barber}},
		BlockRepo:   &fakeBlockRepo{blocks: blocks},
		ApptRepo:    &fakeApptRepo{appts: appts},
		Granularity: 30 * time.Minute,
		Location:    time.UTC,
		Now:         func() time.Time { return time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC) },
	}
}

func TestGetAvailableSlots_InputErrors(t *testing.T) {
	svc := newTestService(nil, nil)

	if _, err := svc.GetAvailableSlots(context.Background(), "b1", "2026-01-05", 0); err == nil {
		t.Fatal("non-positive duration must be rejected")
	}
	if _, err := svc.GetAvailableSlots(context.Background(), "b1", "05/01/2026", 30); err == nil {
		t.Fatal("malformed date must be rejected")
	}
	if _, err := svc.GetAvailableSlots(context.Background(), "nobody", "2026-01-05", 30); err == nil {
		t.Fatal("unknown barber must be rejected")
	}
}

func TestGetAvailableSlots_EndToEnd(t *testing.T) {
	appts := []models.Appointment{{
		ID: "a1", BarberID: "b1",
		Start:  mondayAt(14, 0),
		End:    mondayAt(14, 50),
		Status: models.StatusScheduled,
	}}
	svc := newTestService(appts, nil)

	slots, err := svc.GetAvailableSlots(context.Background(), "b1", "2026-01-05", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 18 open-day slots minus lunch (12:00, 12:30) minus appointment
	// (14:00, 14:30).
	if len(slots) != 14 {
		t.Fatalf("expected 14 slots, got %d", len(slots))
	}
	for _, s := range slots {
		res, err := svc.CheckConflict(context.Background(),
			"b1", schedule.Interval{Start: s, End: s.Add(30 * time.Minute)}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.OK {
			t.Fatalf("generated slot %s rejected with %q", s.Format(time.RFC3339), res.Reason)
		}
	}
}

func TestGetAvailableSlots_NonWorkingDay(t *testing.T) {
	svc := newTestService(nil, nil)

	// 2026-01-06 is a Tuesday; the barber only works Mondays.
	slots, err := svc.GetAvailableSlots(context.Background(), "b1", "2026-01-06", 30)
	if err != nil {
		t.Fatalf("a non-working day is not an error, got %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestCheckConflict_EditExcludesSelf(t *testing.T) {
	appts := []models.Appointment{{
		ID: "a1", BarberID: "b1",
		Start:  mondayAt(14, 0),
		End:    mondayAt(14, 50),
		Status: models.StatusScheduled,
	}}
	svc := newTestService(appts, nil)

	same := schedule.Interval{Start: mondayAt(14, 0), End: mondayAt(14, 50)}
	res, err := svc.CheckConflict(context.Background(), "b1", same, "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK {
		t.Fatalf("editing onto own interval must not self-conflict: %+v", res)
	}

	res, err = svc.CheckConflict(context.Background(), "b1", same, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK || res.Reason != schedule.ReasonOverlapsAppointment {
		t.Fatalf("expected overlaps-appointment without exclusion, got %+v", res)
	}
}

func TestCheckConflict_CustomBlock(t *testing.T) {
	blocks := []models.CustomBlock{{
		ID: "cb1", BarberID: "b1", Date: "2026-01-05",
		StartMinute: 900, EndMinute: 960, Kind: models.BlockUnavailable,
	}}
	svc := newTestService(nil, blocks)

	proposed := schedule.Interval{Start: mondayAt(15, 30), End: mondayAt(16, 0)}
	res, err := svc.CheckConflict(context.Background(), "b1", proposed, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK || res.Reason != schedule.ReasonDuringCustomBlock {
		t.Fatalf("expected during-custom-block, got %+v", res)
	}
}

func TestCheckConflict_SpanningMidnight(t *testing.T) {
	svc := newTestService(nil, nil)

	proposed := schedule.Interval{Start: mondayAt(23, 30), End: mondayAt(23, 30).Add(time.Hour)}
	res, err := svc.CheckConflict(context.Background(), "b1", proposed, "")
	if err != nil {
		t.Fatalf("midnight-spanning proposal must not fail, got %v", err)
	}
	if res.OK || res.Reason != schedule.ReasonOutsideWorkingHours {
		t.Fatalf("expected outside-working-hours, got %+v", res)
	}
}

func TestOccupancyDays(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a1", BarberID: "b1", Start: mondayAt(14, 0), End: mondayAt(15, 0), Status: models.StatusScheduled},
		{ID: "a2", BarberID: "b1", Start: mondayAt(15, 0), End: mondayAt(16, 0), Status: models.StatusCancelled},
	}
	svc := newTestService(appts, nil)

	days, err := svc.OccupancyDays(context.Background(), "2026-01-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 working barber, got %d", len(days))
	}

	total, booked, _ := schedule.Occupancy(days, 30*time.Minute)
	// 18 window slots minus 2 lunch slots.
	if total != 16 {
		t.Fatalf("expected 16 total slots, got %d", total)
	}
	// Only the scheduled appointment counts; the cancelled one is invisible.
	if booked != 2 {
		t.Fatalf("expected 2 booked slots, got %d", booked)
	}
}
