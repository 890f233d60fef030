package usecase

import (
	"oficina-agenda/internal/domain/operator"
	"oficina-agenda/internal/pkg/errs"
	"oficina-agenda/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrInvalidToken = errs.New("invalid or expired token")

// Session is the authenticated operator context carried by a valid token.
type Session struct {
	OperatorID uuid.UUID
	WorkshopID uuid.UUID
	Role       operator.Role
}

type TokenValidator interface {
	ValidateToken(token string) (*Session, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (*Session, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}

	role, err := operator.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}

	return &Session{
		OperatorID: claims.OperatorID,
		WorkshopID: claims.WorkshopID,
		Role:       role,
	}, nil
}
