package auth

import "context"

// AuthService gates the dashboard behind the operator credential.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
