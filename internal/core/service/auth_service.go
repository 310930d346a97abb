package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

// IssuePolicy decides how much of the caller's request is trusted when a
// token is signed.
type IssuePolicy string

const (
	// PolicyClaim signs whatever claim object the caller sends.
	PolicyClaim IssuePolicy = "claim"
	// PolicyRegistered requires the email to belong to an existing account.
	PolicyRegistered IssuePolicy = "registered"
	// PolicyPassword requires a password matching the account's stored hash.
	PolicyPassword IssuePolicy = "password"
)

// ParseIssuePolicy maps a config value to a policy. Empty means PolicyClaim.
func ParseIssuePolicy(s string) (IssuePolicy, error) {
	switch p := IssuePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyClaim, nil
	case PolicyClaim, PolicyRegistered, PolicyPassword:
		return p, nil
	default:
		return "", fmt.Errorf("unknown token issue policy %q", s)
	}
}

// AuthService signs access tokens.
type AuthService struct {
	accounts ports.RoleReader
	secret   []byte
	tokenTTL time.Duration
	policy   IssuePolicy
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAuthService(accounts ports.RoleReader, secret string, tokenTTL time.Duration, policy IssuePolicy, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	if policy == "" {
		policy = PolicyClaim
	}
	return &AuthService{
		accounts: accounts,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		policy:   policy,
		logger:   logger,
		now:      time.Now,
	}
}

// Policy returns the active issue policy.
func (s *AuthService) Policy() IssuePolicy { return s.policy }

// IssueToken signs an HS256 token for the email in req.Claims. exp and iat are
// always set by the server.
func (s *AuthService) IssueToken(ctx context.Context, req ports.TokenRequest) (string, error) {
	email, _ := req.Claims["email"].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.ErrMissingEmail
	}

	var claims jwt.MapClaims
	switch s.policy {
	case PolicyRegistered:
		if _, err := s.accounts.FindByEmail(ctx, email); err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return "", domain.ErrUnauthorized
			}
			return "", fmt.Errorf("issue token: %w", err)
		}
		claims = jwt.MapClaims{"email": email}

	case PolicyPassword:
		if req.Password == "" {
			return "", domain.ErrInvalidCredentials
		}
		account, err := s.accounts.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return "", domain.ErrInvalidCredentials
			}
			return "", fmt.Errorf("issue token: %w", err)
		}
		if account.PasswordHash == "" ||
			bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
			return "", domain.ErrInvalidCredentials
		}
		claims = jwt.MapClaims{"email": email}

	default:
		claims = make(jwt.MapClaims, len(req.Claims)+2)
		for k, v := range req.Claims {
			claims[k] = v
		}
		claims["email"] = email
	}

	now := s.now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.tokenTTL).Unix()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("issue token: sign: %w", err)
	}
	s.logger.Debug().Str("email", email).Str("policy", string(s.policy)).Msg("token issued")
	return token, nil
}
