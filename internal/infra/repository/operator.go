package repository

import (
	"context"

	"oficina-agenda/internal/domain/operator"
	"oficina-agenda/internal/infra"
	"oficina-agenda/internal/infra/db"
	"oficina-agenda/internal/pkg/pgconv"
	"oficina-agenda/internal/usecase/commands"
)

type OperatorRepository struct {
	db db.DBTX
}

func NewOperatorRepository(dbtx db.DBTX) *OperatorRepository {
	return &OperatorRepository{db: dbtx}
}

const createOperatorSQL = `
INSERT INTO operators (id, email, password_hash, role, workshop_id, is_active)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *OperatorRepository) Create(ctx context.Context, dbtx db.DBTX, op *operator.Operator) error {
	_, err := dbtx.Exec(ctx, createOperatorSQL,
		op.ID(),
		op.Email().String(),
		op.PasswordHash(),
		op.Role().String(),
		op.WorkshopID(),
		op.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create operator", err)
	}

	return nil
}

const findOperatorByEmailSQL = `
SELECT id, email, password_hash, role, workshop_id, is_active
  FROM operators
 WHERE email = $1`

func (r *OperatorRepository) FindByEmail(ctx context.Context, email string) (*commands.OperatorSnapshot, error) {
	var snap commands.OperatorSnapshot

	err := r.db.QueryRow(ctx, findOperatorByEmailSQL, email).Scan(
		&snap.ID,
		&snap.Email,
		&snap.PasswordHash,
		&snap.Role,
		&snap.WorkshopID,
		&snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("operator not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find operator by email", err)
	}

	return &snap, nil
}
