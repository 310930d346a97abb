package ports

import "context"

// TokenRequest is the body of POST /jwt. Claims is the caller's JSON object;
// Password is only consulted under the password issue policy.
type TokenRequest struct {
	Claims   map[string]any
	Password string
}

type AuthService interface {
	IssueToken(ctx context.Context, req TokenRequest) (string, error)
}
