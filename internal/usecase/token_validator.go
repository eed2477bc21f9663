package usecase

import (
	"cellar-shop/internal/domain/user"
	"cellar-shop/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a storefront access token to the caller identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	userID, err := claims.UserID()
	if err != nil {
		return uuid.Nil, "", err
	}

	// unknown roles get customer privileges
	role, err := user.NewRole(claims.Role)
	if err != nil {
		role = user.RoleCustomer
	}

	return userID, role, nil
}
