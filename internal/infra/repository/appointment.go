package repository

import (
	"context"
	"time"

	"oficina-agenda/internal/domain/appointment"
	"oficina-agenda/internal/infra"
	"oficina-agenda/internal/infra/db"
	"oficina-agenda/internal/pkg/pgconv"
	"oficina-agenda/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentRepository struct {
	db db.DBTX
}

func NewAppointmentRepository(dbtx db.DBTX) *AppointmentRepository {
	return &AppointmentRepository{db: dbtx}
}

const createAppointmentSQL = `
INSERT INTO appointments (
    codigo_protocolo, workshop_id, workshop_name, workshop_address, workshop_phone,
    customer_name, customer_cpf, customer_phone, customer_email,
    veiculo, servicos, preco_total_centavos, data_agendada, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id`

func (r *AppointmentRepository) Create(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) (int64, error) {
	var id int64
	err := dbtx.QueryRow(ctx, createAppointmentSQL,
		appt.CodigoProtocolo(),
		appt.WorkshopID(),
		appt.Workshop().Name(),
		appt.Workshop().Address(),
		appt.Workshop().Phone(),
		appt.Customer().Name(),
		appt.Customer().CPF(),
		appt.Customer().Phone(),
		appt.Customer().Email(),
		[]byte(appt.Veiculo().Raw()),
		[]byte(appt.Servicos().Raw()),
		appt.PrecoTotalCentavos(),
		appt.DataAgendada(),
		appt.Status().String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create appointment", err)
	}

	return id, nil
}

const findAppointmentSQL = `
SELECT id, codigo_protocolo, workshop_id, workshop_name, workshop_address, workshop_phone,
       customer_name, customer_cpf, customer_phone, customer_email,
       veiculo, servicos, preco_total_centavos, data_agendada, status,
       protocolo, divergencia, motivo_cancelamento, cancelado_por,
       created_at, updated_at
  FROM appointments
 WHERE id = $1`

func (r *AppointmentRepository) FindByID(ctx context.Context, id int64) (*commands.AppointmentSnapshot, error) {
	var (
		snap                             commands.AppointmentSnapshot
		status                           string
		protocolo, divergencia           pgtype.Text
		motivoCancelamento, canceladoPor pgtype.Text
		createdAt, updatedAt             pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, findAppointmentSQL, id).Scan(
		&snap.ID,
		&snap.CodigoProtocolo,
		&snap.WorkshopID,
		&snap.WorkshopName,
		&snap.WorkshopAddress,
		&snap.WorkshopPhone,
		&snap.CustomerName,
		&snap.CustomerCPF,
		&snap.CustomerPhone,
		&snap.CustomerEmail,
		&snap.Veiculo,
		&snap.Servicos,
		&snap.PrecoTotalCentavos,
		&snap.DataAgendada,
		&status,
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

	snap.Status = appointment.Status(status)
	snap.Protocolo = pgconv.StringPtrFromPgtype(protocolo)
	snap.Divergencia = pgconv.StringPtrFromPgtype(divergencia)
	snap.MotivoCancelamento = pgconv.StringPtrFromPgtype(motivoCancelamento)
	snap.CanceladoPor = pgconv.StringPtrFromPgtype(canceladoPor)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &snap, nil
}

const applyTransitionSQL = `
UPDATE appointments
   SET status = $2,
       protocolo = COALESCE($3, protocolo),
       divergencia = COALESCE($4, divergencia),
       motivo_cancelamento = COALESCE($5, motivo_cancelamento),
       cancelado_por = COALESCE($6, cancelado_por),
       updated_at = now()
 WHERE id = $1 AND status = $7`

// ApplyTransition is the authoritative source-state guard: the UPDATE only
// matches while the row still holds the status the caller read, so two
// transitions departing from the same observed state can never both win.
func (r *AppointmentRepository) ApplyTransition(ctx context.Context, id int64, from appointment.Status, change commands.TransitionChange) (bool, error) {
	tag, err := r.db.Exec(ctx, applyTransitionSQL,
		id,
		change.Status.String(),
		pgconv.StringPtrToPgtype(change.Protocolo),
		pgconv.StringPtrToPgtype(change.Divergencia),
		pgconv.StringPtrToPgtype(change.MotivoCancelamento),
		pgconv.StringPtrToPgtype(change.CanceladoPor),
		from.String(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to apply appointment transition", err)
	}

	return tag.RowsAffected() == 1, nil
}

const sweepOverdueSQL = `
UPDATE appointments
   SET status = $1, updated_at = now()
 WHERE data_agendada < $2 AND status = ANY($3)`

// SweepOverdue is one blind set-based update; it never reads rows first.
func (r *AppointmentRepository) SweepOverdue(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, sweepOverdueSQL,
		appointment.StatusForaPrazo.String(),
		now,
		statusStrings(appointment.SweepEligible()),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sweep overdue appointments", err)
	}

	return tag.RowsAffected(), nil
}

func statusStrings(statuses []appointment.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
