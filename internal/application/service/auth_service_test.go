package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comdesk/comdesk-api/internal/domain/entity"
	"github.com/comdesk/comdesk-api/pkg/apperror"
	"github.com/comdesk/comdesk-api/pkg/utils"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	repo := stubSalesPersonRepo{accounts: map[string]entity.SalesPerson{
		"SP1": {Code: "SP1", Name: "Ravi", Email: "ravi@comdesk.example", PasswordHash: hash},
	}}
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, jwtManager)
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService(t)

	out, err := svc.Login(context.Background(), &LoginInput{Code: "SP1", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "SP1", out.SalesPerson.Code)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), &LoginInput{Code: "SP1", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLoginUnknownCode(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), &LoginInput{Code: "SP9", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRefreshTokenIssuesNewPair(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	out, err := svc.Login(ctx, &LoginInput{Code: "SP1", Password: "correct-horse"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, out.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "SP1", refreshed.SalesPerson.Code)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}
