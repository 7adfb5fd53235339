package auth

import (
	"context"
	"testing"

	"github.com/expedicaonl/workforce-backend-go/internal/config"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/auth"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/jwt"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T, username, password string) auth.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	operator := config.OperatorConfig{
		Username:     username,
		PasswordHash: string(hash),
	}
	return NewAuthService(operator, jwt.NewJWTService("test-secret", "15m"))
}

func TestLogin(t *testing.T) {
	service := newService(t, "operador", "senha-forte")

	resp, err := service.Login(context.Background(), auth.LoginRequest{
		Username: "operador",
		Password: "senha-forte",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Positive(t, resp.AccessTokenExpiresIn)
}

func TestLoginWrongPassword(t *testing.T) {
	service := newService(t, "operador", "senha-forte")

	_, err := service.Login(context.Background(), auth.LoginRequest{
		Username: "operador",
		Password: "senha-errada",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownUsername(t *testing.T) {
	service := newService(t, "operador", "senha-forte")

	_, err := service.Login(context.Background(), auth.LoginRequest{
		Username: "intruso",
		Password: "senha-forte",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginMissingFields(t *testing.T) {
	service := newService(t, "operador", "senha-forte")

	_, err := service.Login(context.Background(), auth.LoginRequest{})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "username")
	assert.Contains(t, errs.ToMap(), "password")
}
