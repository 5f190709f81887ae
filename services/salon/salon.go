package salon

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	barberRepo "salonflow/database/repository/barber"
	blockRepo "salonflow/database/repository/block"
	catalogRepo "salonflow/database/repository/catalog"
	"salonflow/models"
	"salonflow/services/schedule"
)

// Service manages salon settings: the barber directory with its weekly
// schedule, custom blocks and the service catalogue. The scheduling engine
// only ever reads what this service writes, so validation here is the data
// layer's guarantee that no inverted range is persisted.
type Service interface {
	CreateBarber(ctx context.Context, barber *models.Barber) error
	GetBarber(ctx context.Context, id string) (*models.Barber, error)
	ListBarbers(ctx context.Context) ([]models.Barber, error)
	UpdateBarber(ctx context.Context, barber *models.Barber) error
	DeleteBarber(ctx context.Context, id string) error

	SetWorkingWindows(ctx context.Context, barberID string, windows []models.WorkingWindow) error
	SaveLunchBreak(ctx context.Context, barberID string, lunch models.LunchBreak) error
	DeleteLunchBreak(ctx context.Context, barberID string) error

	CreateBlock(ctx context.Context, block *models.CustomBlock) error
	UpdateBlock(ctx context.Context, block *models.CustomBlock) error
	DeleteBlock(ctx context.Context, id string) error
	ListBlocks(ctx context.Context, barberID, date string) ([]models.CustomBlock, error)

	CreateService(ctx context.Context, svc *models.SalonService) error
	UpdateService(ctx context.Context, svc *models.SalonService) error
	DeleteService(ctx context.Context, id string) error
	ListServices(ctx context.Context) ([]models.SalonService, error)
}

type DefaultSalonService struct {
	Barbers barberRepo.BarberRepository
	Blocks  blockRepo.BlockRepository
	Catalog catalogRepo.CatalogRepository
}

func (s *DefaultSalonService) CreateBarber(ctx context.Context, barber *models.Barber) error {
	if barber.ID == "" {
		barber.ID = uuid.New().String()
	}
	if err := validateWindows(barber.WorkingWindows); err != nil {
		return err
	}
	return s.Barbers.Create(ctx, barber)
}

func (s *DefaultSalonService) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	return s.Barbers.GetByID(ctx, id)
}

func (s *DefaultSalonService) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	return s.Barbers.List(ctx)
}

func (s *DefaultSalonService) UpdateBarber(ctx context.Context, barber *models.Barber) error {
	if err := validateWindows(barber.WorkingWindows); err != nil {
		return err
	}
	return s.Barbers.Update(ctx, barber)
}

func (s *DefaultSalonService) DeleteBarber(ctx context.Context, id string) error {
	return s.Barbers.Delete(ctx, id)
}

func validateWindows(windows []models.WorkingWindow) error {
	seen := map[time.Weekday]bool{}
	for _, w := range windows {
		if w.StartMinute >= w.EndMinute {
			return fmt.Errorf("%w: weekday %s", ErrInvalidWindow, w.Weekday)
		}
		if seen[w.Weekday] {
			return fmt.Errorf("%w: %s", ErrDuplicateWeekday, w.Weekday)
		}
		seen[w.Weekday] = true
	}
	return nil
}

func (s *DefaultSalonService) SetWorkingWindows(ctx context.Context, barberID string, windows []models.WorkingWindow) error {
	if err := validateWindows(windows); err != nil {
		return err
	}
	return s.Barbers.SetWorkingWindows(ctx, barberID, windows)
}

func (s *DefaultSalonService) SaveLunchBreak(ctx context.Context, barberID string, lunch models.LunchBreak) error {
	if lunch.StartMinute >= lunch.EndMinute {
		return ErrInvalidBreak
	}
	return s.Barbers.SaveLunchBreak(ctx, barberID, lunch)
}

func (s *DefaultSalonService) DeleteLunchBreak(ctx context.Context, barberID string) error {
	return s.Barbers.DeleteLunchBreak(ctx, barberID)
}

func validateBlock(block *models.CustomBlock) error {
	if !block.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownBlockKind, block.Kind)
	}
	if block.StartMinute >= block.EndMinute {
		return ErrInvalidBlock
	}
	if _, err := time.Parse(schedule.DateLayout, block.Date); err != nil {
		return fmt.Errorf("invalid block date %q: %w", block.Date, err)
	}
	return nil
}

func (s *DefaultSalonService) CreateBlock(ctx context.Context, block *models.CustomBlock) error {
	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	if err := validateBlock(block); err != nil {
		return err
	}
	return s.Blocks.Create(ctx, block)
}

func (s *DefaultSalonService) UpdateBlock(ctx context.Context, block *models.CustomBlock) error {
	if err := validateBlock(block); err != nil {
		return err
	}
	return s.Blocks.Update(ctx, block)
}

func (s *DefaultSalonService) DeleteBlock(ctx context.Context, id string) error {
	return s.Blocks.Delete(ctx, id)
}

func (s *DefaultSalonService) ListBlocks(ctx context.Context, barberID, date string) ([]models.CustomBlock, error) {
	if barberID == "" {
		return s.Blocks.GetByDate(ctx, date)
	}
	return s.Blocks.GetByBarberAndDate(ctx, barberID, date)
}

func (s *DefaultSalonService) CreateService(ctx context.Context, svc *models.SalonService) error {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if svc.DurationMin <= 0 {
		return fmt.Errorf("%w: %q needs a positive duration", ErrInvalidService, svc.Name)
	}
	if svc.BufferMin < 0 {
		return fmt.Errorf("%w: %q cannot have a negative buffer", ErrInvalidService, svc.Name)
	}
	return s.Catalog.Create(ctx, svc)
}

func (s *DefaultSalonService) UpdateService(ctx context.Context, svc *models.SalonService) error {
	if svc.DurationMin <= 0 {
		return fmt.Errorf("%w: %q needs a positive duration", ErrInvalidService, svc.Name)
	}
	return s.Catalog.Update(ctx, svc)
}

func (s *DefaultSalonService) DeleteService(ctx context.Context, id string) error {
	return s.Catalog.Delete(ctx, id)
}

func (s *DefaultSalonService) ListServices(ctx context.Context) ([]models.SalonService, error) {
	return s.Catalog.ListActive(ctx)
}
