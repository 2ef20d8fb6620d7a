package usecase

import (
	"github.com/google/uuid"

	"parkhub/internal/domain/user"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/pkg/jwt"
)

// TokenValidator isolates the handler layer from the concrete JWT service.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	service *jwt.Service
}

func NewTokenValidator(service *jwt.Service) TokenValidator {
	return &jwtTokenValidator{service: service}
}

func (v *jwtTokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", errs.Mark(errs.New("token is not an access token"), jwt.ErrInvalidToken)
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, jwt.ErrInvalidToken)
	}
	return claims.UserID, role, nil
}
