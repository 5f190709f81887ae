package stats

import (
	"context"
	"testing"
	"time"

	"salonflow/models"
	"salonflow/services/availability"
	"salonflow/services/schedule"
)

const grain = 30 * time.Minute

func at(h, m int) time.Time {
	return time.Date(2026, 1, 5, h, m, 0, 0, time.UTC)
}

func iv(sh, sm, eh, em int) schedule.Interval {
	return schedule.Interval{Start: at(sh, sm), End: at(eh, em)}
}

type fakeAvailability struct {
	days []schedule.BarberDay
}

func (f *fakeAvailability) GetAvailableSlots(ctx context.Context, barberID, date string, durationMin int) ([]time.Time, error) {
	return nil, nil
}

func (f *fakeAvailability) CheckConflict(ctx context.Context, barberID string, proposed schedule.Interval, excludeAppointmentID string) (schedule.ConflictResult, error) {
	return schedule.ConflictResult{OK: true}, nil
}

func (f *fakeAvailability) DayCalendar(ctx context.Context, date string) ([]availability.BarberDayView, error) {
	return nil, nil
}

func (f *fakeAvailability) OccupancyDays(ctx context.Context, date string) ([]schedule.BarberDay, error) {
	return f.days, nil
}

type fakeApptRepo struct {
	appts []models.Appointment
}

func (f *fakeApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeApptRepo) ListByBarberAndRange(ctx context.Context, barberID string, from, to time.Time) ([]models.Appointment, error) {
	return f.appts, nil
}

func (f *fakeApptRepo) ListByRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	return f.appts, nil
}

func (f *fakeApptRepo) CreateIfFree(ctx context.Context, appt *models.Appointment) error { return nil }
func (f *fakeApptRepo) UpdateIfFree(ctx context.Context, appt *models.Appointment) error { return nil }
func (f *fakeApptRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	return nil
}
func (f *fakeApptRepo) SetPaid(ctx context.Context, id string, paid bool) error { return nil }
func (f *fakeApptRepo) Delete(ctx context.Context, id string) error             { return nil }

type fakeSaleRepo struct {
	sales []models.Sale
}

func (f *fakeSaleRepo) Create(ctx context.Context, sale *models.Sale) error { return nil }

func (f *fakeSaleRepo) ListByRange(ctx context.Context, from, to time.Time) ([]models.Sale, error) {
	return f.sales, nil
}

func newTestService(days []schedule.BarberDay, appts []models.Appointment, sales []models.Sale) *DefaultStatsService {
	return &DefaultStatsService{
		Availability: &fakeAvailability{days: days},
		Appointments: &fakeApptRepo{appts: appts},
		Sales:        &fakeSaleRepo{sales: sales},
		Granularity:  grain,
		Location:     time.UTC,
	}
}

func TestOccupancyForDate(t *testing.T) {
	days := []schedule.BarberDay{{
		Window:   iv(10, 0, 19, 0),
		Bookings: []schedule.Interval{iv(14, 0, 14, 30), iv(15, 0, 15, 30)},
	}}

	svc := newTestService(days, nil, nil)
	got, err := svc.OccupancyForDate(context.Background(), "2026-01-05")
	if err != nil {
		t.Fatalf("OccupancyForDate: %v", err)
	}
	if got.TotalSlots != 18 || got.BookedSlots != 2 {
		t.Errorf("expected 2/18 slots, got %d/%d", got.BookedSlots, got.TotalSlots)
	}
	if got.Date != "2026-01-05" {
		t.Errorf("expected date echoed back, got %q", got.Date)
	}
}

func TestOccupancyForRangeRejectsInvertedRange(t *testing.T) {
	svc := newTestService(nil, nil, nil)
	if _, err := svc.OccupancyForRange(context.Background(), "2026-01-07", "2026-01-05"); err == nil {
		t.Fatal("expected error for inverted date range")
	}
}

func TestOccupancyForRangeOneSummaryPerDay(t *testing.T) {
	svc := newTestService(nil, nil, nil)
	summaries, err := svc.OccupancyForRange(context.Background(), "2026-01-05", "2026-01-07")
	if err != nil {
		t.Fatalf("OccupancyForRange: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries for a 3-day range, got %d", len(summaries))
	}
	if summaries[1].Date != "2026-01-06" {
		t.Errorf("expected second summary for 2026-01-06, got %q", summaries[1].Date)
	}
}

func TestBuildDailyReport(t *testing.T) {
	days := []schedule.BarberDay{{
		Window:   iv(10, 0, 19, 0),
		Bookings: []schedule.Interval{iv(14, 0, 14, 30)},
	}}
	appts := []models.Appointment{
		{ID: "a1", Status: models.StatusScheduled},
		{ID: "a2", Status: models.StatusCompleted},
		{ID: "a3", Status: models.StatusCancelled},
	}
	sales := []models.Sale{
		{Total: 50, Lines: []models.SaleLine{{Kind: "service", RefID: "cut", Label: "Cut", Quantity: 2, UnitPrice: 25}}},
		{Total: 70, Lines: []models.SaleLine{{Kind: "service", RefID: "colour", Label: "Colour", Quantity: 1, UnitPrice: 70}}},
	}

	svc := newTestService(days, appts, sales)
	report, err := svc.BuildDailyReport(context.Background(), "2026-01-05")
	if err != nil {
		t.Fatalf("BuildDailyReport: %v", err)
	}
	if report.Appointments != 2 || report.Cancelled != 1 {
		t.Errorf("expected 2 live and 1 cancelled, got %d/%d", report.Appointments, report.Cancelled)
	}
	if report.SalesCount != 2 || report.SalesTotal != 120 {
		t.Errorf("expected 2 sales totalling 120, got %d totalling %v", report.SalesCount, report.SalesTotal)
	}
	if len(report.TopServices) != 2 || report.TopServices[0].ServiceID != "cut" {
		t.Errorf("unexpected top services: %+v", report.TopServices)
	}
	if report.Occupancy.BookedSlots != 1 {
		t.Errorf("expected occupancy wired into the report, got %+v", report.Occupancy)
	}
}

func TestTopServicesRanking(t *testing.T) {
	sales := []models.Sale{
		{Lines: []models.SaleLine{
			{Kind: "service", RefID: "cut", Label: "Cut", Quantity: 2, UnitPrice: 25},
			{Kind: "product", RefID: "wax", Label: "Wax", Quantity: 5, UnitPrice: 8},
		}},
		{Lines: []models.SaleLine{
			{Kind: "service", RefID: "cut", Label: "Cut", Quantity: 1, UnitPrice: 25},
			{Kind: "service", RefID: "colour", Label: "Colour", Quantity: 1, UnitPrice: 70},
		}},
	}

	top := topServices(sales, 5)
	if len(top) != 2 {
		t.Fatalf("expected 2 ranked services, got %d", len(top))
	}
	if top[0].ServiceID != "cut" || top[0].Count != 3 || top[0].Revenue != 75 {
		t.Errorf("unexpected top entry: %+v", top[0])
	}
	if top[1].ServiceID != "colour" || top[1].Count != 1 {
		t.Errorf("unexpected second entry: %+v", top[1])
	}
}

func TestTopServicesLimit(t *testing.T) {
	sales := []models.Sale{{Lines: []models.SaleLine{
		{Kind: "service", RefID: "a", Label: "A", Quantity: 3, UnitPrice: 10},
		{Kind: "service", RefID: "b", Label: "B", Quantity: 2, UnitPrice: 10},
		{Kind: "service", RefID: "c", Label: "C", Quantity: 1, UnitPrice: 10},
	}}}

	top := topServices(sales, 2)
	if len(top) != 2 {
		t.Fatalf("expected trimmed list of 2, got %d", len(top))
	}
	if top[0].ServiceID != "a" || top[1].ServiceID != "b" {
		t.Errorf("unexpected ranking: %+v", top)
	}
}
