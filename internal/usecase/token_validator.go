package usecase

import (
	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Recipient, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Recipient, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Recipient{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Recipient{}, err
	}

	return user.Recipient{
		ID:       claims.UserID,
		Email:    claims.Email,
		Role:     role,
		IsActive: true,
	}, nil
}
