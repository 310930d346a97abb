package ports

import (
	"context"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

// CreateAccountInput carries the profile sent to POST /users.
type CreateAccountInput struct {
	Name     string
	Email    string
	Photo    string
	Password string // optional; stored as a bcrypt hash
}

// CreateAccountResult reports either the insert or that the email was taken.
type CreateAccountResult struct {
	Insert  *domain.InsertResult
	Existed bool
}

type AccountService interface {
	Create(ctx context.Context, in CreateAccountInput) (*CreateAccountResult, error)
	// Role returns ok=false when no account has the email.
	Role(ctx context.Context, email string) (role domain.Role, ok bool, err error)
	List(ctx context.Context) ([]domain.Account, error)
	MarkSubscribed(ctx context.Context, id string) (*domain.UpdateResult, error)
	Promote(ctx context.Context, id string, role domain.Role) (*domain.UpdateResult, error)
}
