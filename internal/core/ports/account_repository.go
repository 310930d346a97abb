package ports

import (
	"context"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

// AccountRepository defines persistence for user accounts.
type AccountRepository interface {
	// FindByEmail returns domain.ErrAccountNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// Create returns domain.ErrAccountExists when the email is already taken.
	Create(ctx context.Context, account *domain.Account) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Account, error)
	SetSubscribed(ctx context.Context, id string) (*domain.UpdateResult, error)
	SetRole(ctx context.Context, id string, role domain.Role) (*domain.UpdateResult, error)
	SetRoleByEmail(ctx context.Context, email string, role domain.Role) (*domain.UpdateResult, error)
	Count(ctx context.Context) (int64, error)
}

// RoleReader is the narrow view the access guard needs.
type RoleReader interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
}
