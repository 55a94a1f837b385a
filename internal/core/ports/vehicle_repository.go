package ports

import (
	"context"

	"github.com/minimalapi/vehicles-api/internal/core/domain"
)

// VehicleRepository defines persistence operations for vehicles.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	FindByID(ctx context.Context, id int) (*domain.Vehicle, error)
	// List returns every vehicle in store order.
	List(ctx context.Context) ([]*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	// Delete removes the record by ID; deleting an absent record is not an
	// error.
	Delete(ctx context.Context, id int) error
}
