package ports

import (
	"context"

	"github.com/campuskit/school-admin-api/internal/core/domain"
)

type AuthService interface {
	// Register creates an account with the given role. The password is
	// hashed before persistence.
	Register(ctx context.Context, name, email, password, role string) (*domain.Account, error)
	// Login verifies credentials and returns a signed bearer token together
	// with the account. The token is the sole carrier of identity; there is
	// no server-side session and no revocation list.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
}
