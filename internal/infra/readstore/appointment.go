package readstore

import (
	"context"
	"fmt"
	"strings"

	"oficina-agenda/internal/infra"
	"oficina-agenda/internal/infra/db"
	"oficina-agenda/internal/pkg/pgconv"
	"oficina-agenda/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

const appointmentViewSQL = `
SELECT id, codigo_protocolo, workshop_id, workshop_name, workshop_address, workshop_phone,
       customer_name, customer_cpf, customer_phone, customer_email,
       veiculo, servicos, preco_total_centavos, data_agendada, status,
       protocolo, divergencia, motivo_cancelamento, cancelado_por,
       created_at, updated_at
  FROM appointments
 WHERE id = $1`

func (r *AppointmentReadStore) FindByID(ctx context.Context, id int64) (*queries.AppointmentView, error) {
	var (
		view                             queries.AppointmentView
		protocolo, divergencia           pgtype.Text
		motivoCancelamento, canceladoPor pgtype.Text
		createdAt, updatedAt             pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, appointmentViewSQL, id).Scan(
		&view.ID,
		&view.CodigoProtocolo,
		&view.WorkshopID,
		&view.WorkshopName,
		&view.WorkshopAddress,
		&view.WorkshopPhone,
		&view.CustomerName,
		&view.CustomerCPF,
		&view.CustomerPhone,
		&view.CustomerEmail,
		&view.Veiculo,
		&view.Servicos,
		&view.PrecoTotalCentavos,
		&view.DataAgendada,
		&view.Status,
		&protocolo,
		&divergencia,
		&motivoCancelamento,
		&canceladoPor,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	view.Protocolo = pgconv.StringPtrFromPgtype(protocolo)
	view.Divergencia = pgconv.StringPtrFromPgtype(divergencia)
	view.MotivoCancelamento = pgconv.StringPtrFromPgtype(motivoCancelamento)
	view.CanceladoPor = pgconv.StringPtrFromPgtype(canceladoPor)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

const appointmentListSQL = `
SELECT id, codigo_protocolo, workshop_id, workshop_name, customer_name,
       data_agendada, status, preco_total_centavos, created_at
  FROM appointments`

func (r *AppointmentReadStore) FindFiltered(ctx context.Context, filter queries.ListFilter) ([]*queries.AppointmentListItem, error) {
	sql, args := buildListQuery(filter)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var result []*queries.AppointmentListItem
	for rows.Next() {
		var (
			item      queries.AppointmentListItem
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID,
			&item.CodigoProtocolo,
			&item.WorkshopID,
			&item.WorkshopName,
			&item.CustomerName,
			&item.DataAgendada,
			&item.Status,
			&item.PrecoTotalCentavos,
			&createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", rows.Err())
	}

	return result, nil
}

func buildListQuery(filter queries.ListFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.WorkshopID != nil {
		args = append(args, *filter.WorkshopID)
		conds = append(conds, fmt.Sprintf("workshop_id = $%d", len(args)))
	}
	if filter.Customer != nil {
		args = append(args, *filter.Customer)
		conds = append(conds, fmt.Sprintf("(customer_cpf = $%d OR customer_email = $%d)", len(args), len(args)))
	}

	sql := appointmentListSQL
	if len(conds) > 0 {
		sql += "\n WHERE " + strings.Join(conds, " AND ")
	}
	sql += "\n ORDER BY data_agendada DESC, id DESC"

	return sql, args
}
