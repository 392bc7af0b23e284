package ports

import (
	"context"

	"github.com/workpulse/workpulse-api/internal/core/domain"
)

// AuthService implements registration and login for dashboard users and
// agents alike.
type AuthService interface {
	// Register creates an account. An empty role defaults to "user";
	// self-registering as admin is rejected.
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// UserService is the admin-only account management surface.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, email, password, role string) (*domain.User, error)
	// Delete removes an account; an unknown id returns domain.ErrUserNotFound.
	Delete(ctx context.Context, id string) error
}
