package ports

import (
	"context"

	"github.com/campuskit/school-admin-api/internal/core/domain"
)

// AccountRepository defines persistence for the single accounts collection.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// ListByRole returns all accounts with the given role. An empty result is
	// returned as an empty slice; the service layer decides whether that is
	// an error.
	ListByRole(ctx context.Context, role string) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
}
