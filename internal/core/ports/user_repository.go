package ports

import (
	"context"

	"github.com/workpulse/workpulse-api/internal/core/domain"
)

// UserRepository defines persistence operations for dashboard accounts.
// Email uniqueness is enforced by the store; Create returns
// domain.ErrEmailTaken on a duplicate.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
