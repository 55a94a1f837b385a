package ports

import (
	"context"

	"github.com/minimalapi/vehicles-api/internal/core/domain"
)

// AdministratorService defines login plus use-case CRUD for administrators.
type AdministratorService interface {
	// Login verifies credentials and returns a signed token alongside the
	// matching administrator. A miss returns domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.Administrator, error)

	// Create persists a new administrator. The payload is assumed to have
	// passed validation already; no rules are re-checked here.
	Create(ctx context.Context, administrator *domain.Administrator) (*domain.Administrator, error)
	GetByID(ctx context.Context, id int) (*domain.Administrator, error)
	// List returns administrators in store order. A nil page returns the
	// full set; a non-nil page returns the 1-indexed fixed-size page.
	List(ctx context.Context, page *int) ([]*domain.Administrator, error)
	Update(ctx context.Context, administrator *domain.Administrator) error
	Delete(ctx context.Context, administrator *domain.Administrator) error
}
