package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/minimalapi/vehicles-api/internal/api/metrics"
	"github.com/minimalapi/vehicles-api/internal/core/domain"
	"github.com/minimalapi/vehicles-api/internal/core/ports"
)

// VehicleService implements vehicle CRUD with filtered, paginated listing.
type VehicleService struct {
	repo   ports.VehicleRepository
	logger zerolog.Logger
}

func NewVehicleService(repo ports.VehicleRepository, logger zerolog.Logger) *VehicleService {
	return &VehicleService{repo: repo, logger: logger}
}

// Create persists a new vehicle. Validation has already happened at the
// boundary.
func (s *VehicleService) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	created, err := s.repo.Create(ctx, vehicle)
	if err != nil {
		s.logger.Error().Err(err).Str("name", vehicle.Name).Msg("failed to create vehicle")
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("vehicle").Inc()
	s.logger.Info().Int("id", created.ID).Str("name", created.Name).Str("brand", created.Brand).Msg("vehicle created")
	return created, nil
}

func (s *VehicleService) GetByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns vehicles in store order. The optional name and brand filters
// are case-insensitive substring matches, combined with AND and applied
// before pagination.
func (s *VehicleService) List(ctx context.Context, input ports.ListVehiclesInput) ([]*domain.Vehicle, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name != "" || input.Brand != "" {
		filtered := make([]*domain.Vehicle, 0, len(vehicles))
		for _, v := range vehicles {
			if matchesFilter(v, input.Name, input.Brand) {
				filtered = append(filtered, v)
			}
		}
		vehicles = filtered
	}

	return paginate(vehicles, input.Page), nil
}

func (s *VehicleService) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	return s.repo.Update(ctx, vehicle)
}

func (s *VehicleService) Delete(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := s.repo.Delete(ctx, vehicle.ID); err != nil {
		return err
	}
	s.logger.Info().Int("id", vehicle.ID).Msg("vehicle deleted")
	return nil
}

// matchesFilter reports whether the vehicle satisfies every non-empty
// substring filter, ignoring case.
func matchesFilter(v *domain.Vehicle, name, brand string) bool {
	if name != "" && !strings.Contains(strings.ToLower(v.Name), strings.ToLower(name)) {
		return false
	}
	if brand != "" && !strings.Contains(strings.ToLower(v.Brand), strings.ToLower(brand)) {
		return false
	}
	return true
}
