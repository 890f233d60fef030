package commands

import (
	"context"

	"oficina-agenda/internal/domain/operator"
	"oficina-agenda/internal/infra"
	"oficina-agenda/internal/infra/db"
	"oficina-agenda/internal/pkg/errs"
	"oficina-agenda/internal/pkg/jwt"
	"oficina-agenda/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrOperatorInactive   = errs.New("operator account is inactive")
)

type OperatorRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, op *operator.Operator) error
	FindByEmail(ctx context.Context, email string) (*OperatorSnapshot, error)
}

type LoginResult struct {
	Token    string
	Operator *OperatorSnapshot
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	operatorRepo OperatorRepository
	jwtService   *jwt.Service
}

func NewAuthCommands(operatorRepo OperatorRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		operatorRepo: operatorRepo,
		jwtService:   jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	snap, err := a.operatorRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !snap.IsActive {
		return nil, ErrOperatorInactive
	}

	if err := password.ComparePassword(snap.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := operator.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	token, err := a.jwtService.GenerateToken(snap.ID, snap.WorkshopID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate session token")
	}

	return &LoginResult{Token: token, Operator: snap}, nil
}
