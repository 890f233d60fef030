package commands

import (
	"context"

	"oficina-agenda/internal/domain/operator"
	"oficina-agenda/internal/domain/workshop"
	reqdto "oficina-agenda/internal/handler/dto/request"
	"oficina-agenda/internal/infra"
	"oficina-agenda/internal/infra/db"
	"oficina-agenda/internal/pkg/errs"
	"oficina-agenda/internal/pkg/password"
	"oficina-agenda/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrEmailAlreadyInUse      = errs.New("email already in use")
	ErrWorkshopRegistration   = errs.New("workshop registration failed")
	ErrWorkshopValidationFail = errs.New("workshop validation failed")
)

type WorkshopRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, ws *workshop.Workshop) error
	FindByID(ctx context.Context, id uuid.UUID) (*WorkshopSnapshot, error)
}

type RegisterWorkshopResult struct {
	WorkshopID uuid.UUID
	OperatorID uuid.UUID
}

type WorkshopCommands interface {
	Register(ctx context.Context, req reqdto.RegisterWorkshopRequest) (*RegisterWorkshopResult, error)
}

type workshopCommandsImpl struct {
	workshopRepo WorkshopRepository
	operatorRepo OperatorRepository
	pool         *pgxpool.Pool
}

func NewWorkshopCommands(
	workshopRepo WorkshopRepository,
	operatorRepo OperatorRepository,
	pool *pgxpool.Pool,
) WorkshopCommands {
	return &workshopCommandsImpl{
		workshopRepo: workshopRepo,
		operatorRepo: operatorRepo,
		pool:         pool,
	}
}

// Register creates the login credential and the workshop profile in one
// transaction: either both rows commit or neither does.
func (u *workshopCommandsImpl) Register(ctx context.Context, req reqdto.RegisterWorkshopRequest) (*RegisterWorkshopResult, error) {
	ws, err := workshop.NewWorkshop(req.Name, req.Address, req.Phone, req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrWorkshopValidationFail)
	}

	email, err := operator.NewEmail(req.OperatorEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrWorkshopValidationFail)
	}

	hash, err := password.HashPassword(req.OperatorPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrWorkshopValidationFail)
	}

	op := operator.NewOperator(email, hash, operator.RoleAdmin, ws.ID())

	_, err = shared.RunInTx(ctx, u.pool, func(tx db.DBTX) (struct{}, error) {
		if err := u.workshopRepo.Create(ctx, tx, ws); err != nil {
			return struct{}{}, err
		}
		if err := u.operatorRepo.Create(ctx, tx, op); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyInUse
		}
		return nil, errs.Mark(err, ErrWorkshopRegistration)
	}

	return &RegisterWorkshopResult{WorkshopID: ws.ID(), OperatorID: op.ID()}, nil
}
