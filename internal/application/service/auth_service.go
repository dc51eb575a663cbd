package service

import (
	"context"

	"github.com/comdesk/comdesk-api/internal/domain/entity"
	"github.com/comdesk/comdesk-api/internal/domain/repository"
	"github.com/comdesk/comdesk-api/pkg/apperror"
	"github.com/comdesk/comdesk-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	salesPersonRepo repository.SalesPersonRepository
	jwtManager      *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(salesPersonRepo repository.SalesPersonRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		salesPersonRepo: salesPersonRepo,
		jwtManager:      jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Code     string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	SalesPerson  *entity.SalesPerson
	AccessToken  string
	RefreshToken string
}

// Login authenticates a salesperson and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	sp, err := s.salesPersonRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, sp.PasswordHash) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(sp.Code, sp.Name, sp.Email)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(sp.Code)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	return &LoginOutput{
		SalesPerson:  sp,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken issues a new access token from a valid refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	code, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	sp, err := s.salesPersonRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(sp.Code, sp.Name, sp.Email)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(sp.Code)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	return &LoginOutput{
		SalesPerson:  sp,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// GetProfile returns the salesperson account for the given code
func (s *AuthService) GetProfile(ctx context.Context, code string) (*entity.SalesPerson, error) {
	sp, err := s.salesPersonRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, apperror.NewNotFoundError("Salesperson")
	}
	return sp, nil
}
