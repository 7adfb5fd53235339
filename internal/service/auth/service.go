package auth

import (
	"context"

	"github.com/expedicaonl/workforce-backend-go/internal/config"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/auth"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	operator   config.OperatorConfig
	jwtService jwt.Service
}

func NewAuthService(operator config.OperatorConfig, jwtService jwt.Service) auth.AuthService {
	return &authService{
		operator:   operator,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService. The dashboard has exactly one operator
// credential, injected through the environment as a bcrypt hash.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if req.Username != s.operator.Username {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.operator.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(req.Username)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}
