package ports

import (
	"context"

	"github.com/minimalapi/vehicles-api/internal/core/domain"
)

// AdministratorRepository defines persistence operations for administrators.
// The store owns identifier assignment; Create returns the stored record with
// its assigned ID.
type AdministratorRepository interface {
	Create(ctx context.Context, administrator *domain.Administrator) (*domain.Administrator, error)
	FindByID(ctx context.Context, id int) (*domain.Administrator, error)
	FindByEmail(ctx context.Context, email string) (*domain.Administrator, error)
	// List returns every administrator in store order.
	List(ctx context.Context) ([]*domain.Administrator, error)
	// Update replaces all stored fields of the record with the same ID.
	Update(ctx context.Context, administrator *domain.Administrator) error
	// Delete removes the record by ID. Deleting an absent record is not an
	// error; absence after delete is success.
	Delete(ctx context.Context, id int) error
}
