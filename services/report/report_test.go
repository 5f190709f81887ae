package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"salonflow/models"
)

func TestSendDailyReportRequiresRecipients(t *testing.T) {
	svc := &DefaultReportService{}
	if err := svc.SendDailyReport(context.Background(), "2026-01-05"); err != ErrNoRecipients {
		t.Fatalf("expected ErrNoRecipients, got %v", err)
	}
}

func TestRenderReport(t *testing.T) {
	body := renderReport(&models.DailyReport{
		Date: "2026-01-05",
		Occupancy: models.OccupancySummary{
			TotalSlots:  18,
			BookedSlots: 2,
			RatePercent: 11.1,
		},
		Appointments: 2,
		Cancelled:    1,
		SalesTotal:   120,
		SalesCount:   2,
		TopServices: []models.ServiceCount{
			{ServiceID: "cut", Name: "Cut", Count: 3, Revenue: 75},
		},
	})

	for _, want := range []string{"2026-01-05", "2 of 18 slots", "11.1%", "Cut: 3 sold"} {
		if !strings.Contains(body, want) {
			t.Errorf("report body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderReminderListsServices(t *testing.T) {
	client := &models.Client{FullName: "Nina Petit"}
	appt := models.Appointment{
		Start: time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC),
		Services: []models.ServiceLine{
			{Name: "Cut", DurationMin: 30},
			{Name: "Colour", DurationMin: 60},
		},
	}

	body := renderReminder(client, appt, time.UTC)
	for _, want := range []string{"Nina Petit", "14:00", "Cut (30 min)", "Colour (60 min)"} {
		if !strings.Contains(body, want) {
			t.Errorf("reminder body missing %q:\n%s", want, body)
		}
	}
}
