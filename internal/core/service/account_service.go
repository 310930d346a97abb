package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

// Create registers a new account with role User. An email that is already
// registered is not an error: the result reports Existed instead. The unique
// index on email makes a concurrent duplicate insert land on the same answer.
func (s *AccountService) Create(ctx context.Context, in ports.CreateAccountInput) (*ports.CreateAccountResult, error) {
	if in.Email == "" {
		return nil, domain.ErrMissingEmail
	}

	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return &ports.CreateAccountResult{Existed: true}, nil
	case !errors.Is(err, domain.ErrAccountNotFound):
		return nil, fmt.Errorf("create account: %w", err)
	}

	account := &domain.Account{
		Name:       in.Name,
		Email:      in.Email,
		Photo:      in.Photo,
		Role:       domain.RoleUser,
		Subscribed: false,
		CreatedAt:  time.Now().UTC(),
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("create account: hash password: %w", err)
		}
		account.PasswordHash = string(hash)
	}

	res, err := s.repo.Create(ctx, account)
	if errors.Is(err, domain.ErrAccountExists) {
		return &ports.CreateAccountResult{Existed: true}, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("email", in.Email).Msg("failed to create account")
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.logger.Info().Str("email", in.Email).Msg("account created")
	return &ports.CreateAccountResult{Insert: res}, nil
}

func (s *AccountService) Role(ctx context.Context, email string) (domain.Role, bool, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get role: %w", err)
	}
	return account.Role, true, nil
}

func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// MarkSubscribed flips the subscription flag. Payment is not verified here.
func (s *AccountService) MarkSubscribed(ctx context.Context, id string) (*domain.UpdateResult, error) {
	res, err := s.repo.SetSubscribed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mark subscribed: %w", err)
	}
	return res, nil
}

// Promote raises an account to Moderator or Admin.
func (s *AccountService) Promote(ctx context.Context, id string, role domain.Role) (*domain.UpdateResult, error) {
	if role != domain.RoleAdmin && role != domain.RoleModerator {
		return nil, domain.ErrInvalidRole
	}
	res, err := s.repo.SetRole(ctx, id, role)
	if err != nil {
		return nil, fmt.Errorf("promote account: %w", err)
	}
	s.logger.Info().Str("account_id", id).Str("role", string(role)).Msg("account promoted")
	return res, nil
}

// PromoteByEmail is used by the command line to bootstrap the first admin.
func (s *AccountService) PromoteByEmail(ctx context.Context, email string, role domain.Role) (*domain.UpdateResult, error) {
	if role != domain.RoleAdmin && role != domain.RoleModerator {
		return nil, domain.ErrInvalidRole
	}
	res, err := s.repo.SetRoleByEmail(ctx, email, role)
	if err != nil {
		return nil, fmt.Errorf("promote account: %w", err)
	}
	s.logger.Info().Str("email", email).Str("role", string(role)).Msg("account promoted")
	return res, nil
}
