// File: services/stats/stats.go
package stats

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	apptRepo "salonflow/database/repository/appointment"
	saleRepo "salonflow/database/repository/sale"
	"salonflow/models"
	"salonflow/services/availability"
	"salonflow/services/schedule"
)

// Service aggregates the dashboard numbers. Occupancy is derived from the
// same capacity model the slot generator uses, so the dashboard and the
// booking flow always agree on what a bookable day looks like.
type Service interface {
	OccupancyForDate(ctx context.Context, date string) (models.OccupancySummary, error)
	OccupancyForRange(ctx context.Context, from, to string) ([]models.OccupancySummary, error)
	BuildDailyReport(ctx context.Context, date string) (*models.DailyReport, error)
}

type DefaultStatsService struct {
	Availability availability.Service
	Appointments apptRepo.AppointmentRepository
	Sales        saleRepo.SaleRepository
	Granularity  time.Duration
	Location     *time.Location
}

func (s *DefaultStatsService) OccupancyForDate(ctx context.Context, date string) (models.OccupancySummary, error) {
	days, err := s.Availability.OccupancyDays(ctx, date)
	if err != nil {
		return models.OccupancySummary{}, err
	}
	total, booked, rate := schedule.Occupancy(days, s.Granularity)
	return models.OccupancySummary{
		Date:        date,
		TotalSlots:  total,
		BookedSlots: booked,
		RatePercent: rate,
	}, nil
}

// OccupancyForRange returns one summary per date, from and to inclusive.
func (s *DefaultStatsService) OccupancyForRange(ctx context.Context, from, to string) ([]models.OccupancySummary, error) {
	start, err := time.ParseInLocation(schedule.DateLayout, from, s.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", availability.ErrInvalidDate, from)
	}
	end, err := time.ParseInLocation(schedule.DateLayout, to, s.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", availability.ErrInvalidDate, to)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: range %q..%q", availability.ErrInvalidDate, from, to)
	}

	var summaries []models.OccupancySummary
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		summary, err := s.OccupancyForDate(ctx, d.Format(schedule.DateLayout))
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// BuildDailyReport composes the evening summary for one date: occupancy,
// appointment counts, takings and the best-selling services.
func (s *DefaultStatsService) BuildDailyReport(ctx context.Context, date string) (*models.DailyReport, error) {
	day, err := time.ParseInLocation(schedule.DateLayout, date, s.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", availability.ErrInvalidDate, date)
	}
	dayStart := schedule.AtMinute(day, 0, s.Location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	occupancy, err := s.OccupancyForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	report := &models.DailyReport{Date: date, Occupancy: occupancy}

	appts, err := s.Appointments.ListByRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	for _, a := range appts {
		if a.Status == models.StatusCancelled {
			report.Cancelled++
			continue
		}
		report.Appointments++
	}

	sales, err := s.Sales.ListByRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	report.SalesCount = len(sales)
	for _, sale := range sales {
		report.SalesTotal += sale.Total
	}
	report.SalesTotal = math.Round(report.SalesTotal*100) / 100
	report.TopServices = topServices(sales, 5)

	return report, nil
}

// topServices ranks catalogue services by units sold, revenue breaking ties.
func topServices(sales []models.Sale, limit int) []models.ServiceCount {
	byService := make(map[string]*models.ServiceCount)
	for _, sale := range sales {
		for _, line := range sale.Lines {
			if line.Kind != "service" || line.RefID == "" {
				continue
			}
			entry, ok := byService[line.RefID]
			if !ok {
				entry = &models.ServiceCount{ServiceID: line.RefID, Name: line.Label}
				byService[line.RefID] = entry
			}
			entry.Count += line.Quantity
			entry.Revenue += float64(line.Quantity) * line.UnitPrice
		}
	}

	ranked := make([]models.ServiceCount, 0, len(byService))
	for _, entry := range byService {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Revenue > ranked[j].Revenue
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
