package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apptRepo "salonflow/database/repository/appointment"
	catalogRepo "salonflow/database/repository/catalog"
	"salonflow/models"
	"salonflow/services/availability"
	"salonflow/services/schedule"
	"salonflow/utils"
)

// CreateRequest is the payload for booking a new appointment.
type CreateRequest struct {
	BarberID   string    `json:"barberId"`
	ClientID   string    `json:"clientId,omitempty"`
	ClientName string    `json:"clientName"`
	ServiceIDs []string  `json:"serviceIds"`
	Start      time.Time `json:"start"`
	Notes      string    `json:"notes,omitempty"`
}

// EditRequest carries the fields an edit may change; nil means keep.
type EditRequest struct {
	BarberID   *string    `json:"barberId,omitempty"`
	ClientName *string    `json:"clientName,omitempty"`
	ServiceIDs *[]string  `json:"serviceIds,omitempty"`
	Start      *time.Time `json:"start,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}

// Service manages the appointment lifecycle. Every write that can move an
// appointment in time re-validates against the scheduling engine, and the
// repository re-checks overlap once more inside its transaction.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*models.Appointment, error)
	Edit(ctx context.Context, id string, req EditRequest) (*models.Appointment, error)
	Cancel(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	MarkPaid(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.Appointment, error)
}

type DefaultAppointmentService struct {
	Repo         apptRepo.AppointmentRepository
	Catalog      catalogRepo.CatalogRepository
	Availability availability.Service
}

// buildLines snapshots the requested catalogue entries into service lines.
func (s *DefaultAppointmentService) buildLines(ctx context.Context, serviceIDs []string) ([]models.ServiceLine, error) {
	if len(serviceIDs) == 0 {
		return nil, ErrNoServices
	}
	services, err := s.Catalog.GetByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	byID := make(map[string]models.SalonService, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	lines := make([]models.ServiceLine, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, ok := byID[id]
		if !ok || !svc.Active {
			return nil, fmt.Errorf("%w: %s", ErrUnknownService, id)
		}
		lines = append(lines, models.ServiceLine{
			ServiceID:   svc.ID,
			Name:        svc.Name,
			DurationMin: svc.DurationMin,
			BufferMin:   svc.BufferMin,
			Price:       svc.Price,
		})
	}
	return lines, nil
}

// bookedEnd computes the stored end instant: start plus every service's
// duration and buffer. Computed once here; never re-derived elsewhere.
func bookedEnd(start time.Time, lines []models.ServiceLine) time.Time {
	end := start
	for _, l := range lines {
		end = end.Add(time.Duration(l.DurationMin+l.BufferMin) * time.Minute)
	}
	return end
}

func (s *DefaultAppointmentService) validate(ctx context.Context, barberID string, iv schedule.Interval, excludeID string) error {
	res, err := s.Availability.CheckConflict(ctx, barberID, iv, excludeID)
	if err != nil {
		return err
	}
	if !res.OK {
		return &ConflictError{Reason: res.Reason, AppointmentID: res.AppointmentID}
	}
	return nil
}

func (s *DefaultAppointmentService) Create(ctx context.Context, req CreateRequest) (*models.Appointment, error) {
	lines, err := s.buildLines(ctx, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:         uuid.New().String(),
		BarberID:   req.BarberID,
		ClientID:   req.ClientID,
		ClientName: req.ClientName,
		Services:   lines,
		Start:      req.Start,
		End:        bookedEnd(req.Start, lines),
		Status:     models.StatusScheduled,
		Notes:      req.Notes,
	}

	iv := schedule.Interval{Start: appt.Start, End: appt.End}
	if err := s.validate(ctx, appt.BarberID, iv, ""); err != nil {
		return nil, err
	}

	// The repository repeats the overlap check in its transaction; a
	// concurrent booking surfaces as the retriable ErrSlotTaken.
	if err := s.Repo.CreateIfFree(ctx, appt); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("appointment created",
		zap.String("appointmentId", appt.ID),
		zap.String("barberId", appt.BarberID),
		zap.Time("start", appt.Start))
	return appt, nil
}

// Edit applies the requested changes. Conflict validation runs uniformly on
// every edit, whether or not the time moved; the edited appointment never
// blocks itself.
func (s *DefaultAppointmentService) Edit(ctx context.Context, id string, req EditRequest) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status == models.StatusCancelled {
		return nil, ErrEditCancelled
	}

	if req.BarberID != nil {
		appt.BarberID = *req.BarberID
	}
	if req.ClientName != nil {
		appt.ClientName = *req.ClientName
	}
	if req.Notes != nil {
		appt.Notes = *req.Notes
	}
	if req.Start != nil {
		appt.Start = *req.Start
	}
	if req.ServiceIDs != nil {
		lines, err := s.buildLines(ctx, *req.ServiceIDs)
		if err != nil {
			return nil, err
		}
		appt.Services = lines
	}
	appt.End = bookedEnd(appt.Start, appt.Services)

	iv := schedule.Interval{Start: appt.Start, End: appt.End}
	if err := s.validate(ctx, appt.BarberID, iv, appt.ID); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateIfFree(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Cancel flips the status; the record stays for history and statistics, but
// stops blocking its slot immediately.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, id string) error {
	return s.Repo.UpdateStatus(ctx, id, models.StatusCancelled)
}

func (s *DefaultAppointmentService) Complete(ctx context.Context, id string) error {
	return s.Repo.UpdateStatus(ctx, id, models.StatusCompleted)
}

func (s *DefaultAppointmentService) MarkPaid(ctx context.Context, id string) error {
	return s.Repo.SetPaid(ctx, id, true)
}

func (s *DefaultAppointmentService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultAppointmentService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	return s.Repo.GetByID(ctx, id)
}
