package repository

import (
	"context"

	"oficina-agenda/internal/domain/workshop"
	"oficina-agenda/internal/infra"
	"oficina-agenda/internal/infra/db"
	"oficina-agenda/internal/pkg/pgconv"
	"oficina-agenda/internal/usecase/commands"

	"github.com/google/uuid"
)

type WorkshopRepository struct {
	db db.DBTX
}

func NewWorkshopRepository(dbtx db.DBTX) *WorkshopRepository {
	return &WorkshopRepository{db: dbtx}
}

const createWorkshopSQL = `
INSERT INTO workshops (id, name, address, phone, email)
VALUES ($1, $2, $3, $4, $5)`

func (r *WorkshopRepository) Create(ctx context.Context, dbtx db.DBTX, ws *workshop.Workshop) error {
	_, err := dbtx.Exec(ctx, createWorkshopSQL,
		ws.ID(),
		ws.Name(),
		ws.Address(),
		ws.Phone(),
		ws.Email(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create workshop", err)
	}

	return nil
}

const findWorkshopByIDSQL = `
SELECT id, name, address, phone, email
  FROM workshops
 WHERE id = $1`

func (r *WorkshopRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.WorkshopSnapshot, error) {
	var snap commands.WorkshopSnapshot

	err := r.db.QueryRow(ctx, findWorkshopByIDSQL, id).Scan(
		&snap.ID,
		&snap.Name,
		&snap.Address,
		&snap.Phone,
		&snap.Email,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("workshop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find workshop by ID", err)
	}

	return &snap, nil
}
