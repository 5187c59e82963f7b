package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/repository"
)

// CatalogService lokasyon, ekipman ve ulaşım kayıtlarını yönetir
type CatalogService struct {
	locationRepo  *repository.LocationRepository
	equipmentRepo *repository.EquipmentRepository
	transportRepo *repository.TransportRepository
}

func NewCatalogService(
	locationRepo *repository.LocationRepository,
	equipmentRepo *repository.EquipmentRepository,
	transportRepo *repository.TransportRepository,
) *CatalogService {
	return &CatalogService{
		locationRepo:  locationRepo,
		equipmentRepo: equipmentRepo,
		transportRepo: transportRepo,
	}
}

// Locations

func (s *CatalogService) ListLocations(ctx context.Context, includeInactive bool) ([]models.Location, error) {
	return s.locationRepo.List(ctx, !includeInactive)
}

func (s *CatalogService) GetLocation(ctx context.Context, id uint) (*models.Location, error) {
	l, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepo(err, "location")
	}
	return l, nil
}

func (s *CatalogService) CreateLocation(ctx context.Context, req models.LocationRequest) (*models.Location, error) {
	l := &models.Location{IsActive: true}
	applyLocation(l, req)
	if err := s.ensureUniqueLocation(ctx, l.Name, 0); err != nil {
		return nil, err
	}
	if err := s.locationRepo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *CatalogService) UpdateLocation(ctx context.Context, id uint, req models.LocationRequest) (*models.Location, error) {
	l, err := s.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	applyLocation(l, req)
	if err := s.ensureUniqueLocation(ctx, l.Name, l.ID); err != nil {
		return nil, err
	}
	if err := s.locationRepo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *CatalogService) DeleteLocation(ctx context.Context, id uint) error {
	return wrapRepo(s.locationRepo.Delete(ctx, id), "location")
}

func (s *CatalogService) ensureUniqueLocation(ctx context.Context, name string, exceptID uint) error {
	taken, err := s.locationRepo.NameExists(ctx, name, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: location %q already exists", ErrConflict, name)
	}
	return nil
}

func applyLocation(l *models.Location, req models.LocationRequest) {
	l.Name = strings.TrimSpace(req.Name)
	l.City = req.City
	l.Address = req.Address
	l.Description = req.Description
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}
}

// Equipment

func (s *CatalogService) ListEquipment(ctx context.Context, category string, includeInactive bool) ([]models.Equipment, error) {
	return s.equipmentRepo.List(ctx, category, !includeInactive)
}

func (s *CatalogService) GetEquipment(ctx context.Context, id uint) (*models.Equipment, error) {
	e, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepo(err, "equipment")
	}
	return e, nil
}

func (s *CatalogService) CreateEquipment(ctx context.Context, req models.EquipmentRequest) (*models.Equipment, error) {
	e := &models.Equipment{IsActive: true}
	applyEquipment(e, req)
	if err := s.equipmentRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *CatalogService) UpdateEquipment(ctx context.Context, id uint, req models.EquipmentRequest) (*models.Equipment, error) {
	e, err := s.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	applyEquipment(e, req)
	if err := s.equipmentRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *CatalogService) DeleteEquipment(ctx context.Context, id uint) error {
	return wrapRepo(s.equipmentRepo.Delete(ctx, id), "equipment")
}

func applyEquipment(e *models.Equipment, req models.EquipmentRequest) {
	e.Name = strings.TrimSpace(req.Name)
	e.Category = strings.ToLower(strings.TrimSpace(req.Category))
	e.Description = req.Description
	e.DailyRate = req.DailyRate
	e.Stock = req.Stock
	e.ImageURL = req.ImageURL
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
}

// Transport

func (s *CatalogService) ListTransport(ctx context.Context, includeInactive bool) ([]models.Transport, error) {
	return s.transportRepo.List(ctx, !includeInactive)
}

func (s *CatalogService) GetTransport(ctx context.Context, id uint) (*models.Transport, error) {
	t, err := s.transportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepo(err, "transport")
	}
	return t, nil
}

func (s *CatalogService) CreateTransport(ctx context.Context, req models.TransportRequest) (*models.Transport, error) {
	t := &models.Transport{IsActive: true}
	applyTransport(t, req)
	if err := s.transportRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) UpdateTransport(ctx context.Context, id uint, req models.TransportRequest) (*models.Transport, error) {
	t, err := s.GetTransport(ctx, id)
	if err != nil {
		return nil, err
	}
	applyTransport(t, req)
	if err := s.transportRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) DeleteTransport(ctx context.Context, id uint) error {
	return wrapRepo(s.transportRepo.Delete(ctx, id), "transport")
}

func applyTransport(t *models.Transport, req models.TransportRequest) {
	t.Name = strings.TrimSpace(req.Name)
	t.VehicleType = req.VehicleType
	t.Capacity = req.Capacity
	t.DailyRate = req.DailyRate
	t.ImageURL = req.ImageURL
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
}
