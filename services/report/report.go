// File: services/report/report.go
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"salonflow/config"
	apptRepo "salonflow/database/repository/appointment"
	clientRepo "salonflow/database/repository/client"
	"salonflow/models"
	"salonflow/services/schedule"
	"salonflow/services/stats"
	"salonflow/utils"
)

var ErrNoRecipients = errors.New("no report recipients configured")

// Service emails the daily summary to the salon owner and booking reminders
// to clients.
type Service interface {
	SendDailyReport(ctx context.Context, date string) error
	SendAppointmentReminders(ctx context.Context, date string) (int, error)
}

type DefaultReportService struct {
	Stats        stats.Service
	Appointments apptRepo.AppointmentRepository
	Clients      clientRepo.ClientRepository

	host       string
	port       int
	username   string
	password   string
	from       string
	recipients []string
}

// NewDefaultReportService reads SMTP settings from the loaded config.
func NewDefaultReportService(statsSvc stats.Service, appts apptRepo.AppointmentRepository, clients clientRepo.ClientRepository) *DefaultReportService {
	var recipients []string
	for _, r := range strings.Split(config.AppConfig.ReportRecipients, ",") {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	return &DefaultReportService{
		Stats:        statsSvc,
		Appointments: appts,
		Clients:      clients,
		host:         config.AppConfig.SMTPHost,
		port:         config.AppConfig.SMTPPort,
		username:     config.AppConfig.SMTPUsername,
		password:     config.AppConfig.SMTPPassword,
		from:         config.AppConfig.ReportFrom,
		recipients:   recipients,
	}
}

func (s *DefaultReportService) SendDailyReport(ctx context.Context, date string) error {
	if len(s.recipients) == 0 {
		return ErrNoRecipients
	}

	report, err := s.Stats.BuildDailyReport(ctx, date)
	if err != nil {
		return fmt.Errorf("build daily report: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", s.recipients...)
	msg.SetHeader("Subject", fmt.Sprintf("Salon daily report for %s", report.Date))
	msg.SetBody("text/html", renderReport(report))

	dialer := gomail.NewDialer(s.host, s.port, s.username, s.password)

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send daily report: %w", err)
		}
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(30 * time.Second):
		return context.DeadlineExceeded
	}

	utils.GetLogger().Info("daily report sent",
		zap.String("date", report.Date),
		zap.Int("recipients", len(s.recipients)))
	return nil
}

// SendAppointmentReminders emails every client holding a scheduled
// appointment on the given date. Clients without an email address are
// skipped. Returns the number of reminders sent.
func (s *DefaultReportService) SendAppointmentReminders(ctx context.Context, date string) (int, error) {
	logger := utils.GetLogger()

	loc := config.SalonLocation()
	day, err := time.ParseInLocation(schedule.DateLayout, date, loc)
	if err != nil {
		return 0, fmt.Errorf("invalid reminder date %q: %w", date, err)
	}
	dayStart := schedule.AtMinute(day, 0, loc)

	appts, err := s.Appointments.ListByRange(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return 0, fmt.Errorf("load appointments: %w", err)
	}

	dialer := gomail.NewDialer(s.host, s.port, s.username, s.password)
	sent := 0
	for _, appt := range appts {
		if appt.Status != models.StatusScheduled || appt.ClientID == "" {
			continue
		}
		client, err := s.Clients.GetByID(ctx, appt.ClientID)
		if err != nil || client.Email == "" {
			continue
		}

		msg := gomail.NewMessage()
		msg.SetHeader("From", s.from)
		msg.SetHeader("To", client.Email)
		msg.SetHeader("Subject", fmt.Sprintf("Reminder: your appointment on %s", date))
		msg.SetBody("text/html", renderReminder(client, appt, loc))

		if err := dialer.DialAndSend(msg); err != nil {
			logger.Warn("failed to send reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
			continue
		}
		sent++
	}

	logger.Info("appointment reminders sent", zap.String("date", date), zap.Int("sent", sent))
	return sent, nil
}

func renderReminder(client *models.Client, appt models.Appointment, loc *time.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hi %s,</p>", client.FullName)
	fmt.Fprintf(&b, "<p>This is a reminder for your appointment at %s.</p>",
		appt.Start.In(loc).Format("15:04 on Monday, 2 January"))
	if len(appt.Services) > 0 {
		b.WriteString("<ul>")
		for _, line := range appt.Services {
			fmt.Fprintf(&b, "<li>%s (%d min)</li>", line.Name, line.DurationMin)
		}
		b.WriteString("</ul>")
	}
	b.WriteString("<p>See you soon!</p>")
	return b.String()
}

func renderReport(r *models.DailyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Daily report for %s</h2>", r.Date)
	fmt.Fprintf(&b, "<p>Occupancy: %d of %d slots booked (%.1f%%)</p>",
		r.Occupancy.BookedSlots, r.Occupancy.TotalSlots, r.Occupancy.RatePercent)
	fmt.Fprintf(&b, "<p>Appointments: %d (plus %d cancelled)</p>", r.Appointments, r.Cancelled)
	fmt.Fprintf(&b, "<p>Sales: %d tickets, %.2f total</p>", r.SalesCount, r.SalesTotal)
	if len(r.TopServices) > 0 {
		b.WriteString("<h3>Top services</h3><ul>")
		for _, s := range r.TopServices {
			fmt.Fprintf(&b, "<li>%s: %d sold, %.2f revenue</li>", s.Name, s.Count, s.Revenue)
		}
		b.WriteString("</ul>")
	}
	return b.String()
}
