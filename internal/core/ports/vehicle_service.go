package ports

import (
	"context"

	"github.com/minimalapi/vehicles-api/internal/core/domain"
)

// ListVehiclesInput carries the query parameters for listing vehicles.
type ListVehiclesInput struct {
	// Page is the 1-indexed page number; nil returns the full matching set.
	Page *int
	// Name and Brand are optional case-insensitive substring filters,
	// combined with AND and applied before pagination.
	Name  string
	Brand string
}

// VehicleService defines use-case operations for vehicles.
type VehicleService interface {
	// Create persists a new vehicle. The payload is assumed to have passed
	// validation already.
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id int) (*domain.Vehicle, error)
	List(ctx context.Context, input ListVehiclesInput) ([]*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, vehicle *domain.Vehicle) error
}
