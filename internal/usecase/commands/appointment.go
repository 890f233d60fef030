package commands

import (
	"context"

	"oficina-agenda/internal/domain/appointment"
	reqdto "oficina-agenda/internal/handler/dto/request"
	"oficina-agenda/internal/infra"
	"oficina-agenda/internal/infra/db"
	"oficina-agenda/internal/pkg/clock"
	"oficina-agenda/internal/pkg/errs"
	"oficina-agenda/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrValidationFailed        = errs.New("appointment validation failed")
	ErrTransitionNotAllowed    = errs.New("transition not allowed")
	ErrConcurrentTransition    = errs.New("appointment status changed concurrently")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const defaultCustomerCancelReason = "cancelado pelo cliente"

type AppointmentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) (int64, error)
	FindByID(ctx context.Context, id int64) (*AppointmentSnapshot, error)
	// ApplyTransition persists the change only if the row is still in the
	// source status observed at read time; it reports whether a row matched.
	ApplyTransition(ctx context.Context, id int64, from appointment.Status, change TransitionChange) (bool, error)
}

type AppointmentCommands interface {
	Create(ctx context.Context, req reqdto.CreateAppointmentRequest) (*queries.AppointmentView, error)
	AttachProtocol(ctx context.Context, actor Actor, id int64, protocolo string) (*queries.AppointmentView, error)
	FlagDivergence(ctx context.Context, actor Actor, id int64, text string) (*queries.AppointmentView, error)
	Conclude(ctx context.Context, actor Actor, id int64) (*queries.AppointmentView, error)
	Cancel(ctx context.Context, actor Actor, id int64, reason string) (*queries.AppointmentView, error)
	CancelByCustomer(ctx context.Context, id int64, reason string) (*queries.AppointmentView, error)
}

type appointmentCommandsImpl struct {
	repo               AppointmentRepository
	appointmentQueries queries.AppointmentQueries
	pool               *pgxpool.Pool
	clock              clock.Clock
}

func NewAppointmentCommands(
	repo AppointmentRepository,
	appointmentQueries queries.AppointmentQueries,
	pool *pgxpool.Pool,
	clock clock.Clock,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		repo:               repo,
		appointmentQueries: appointmentQueries,
		pool:               pool,
		clock:              clock,
	}
}

func (u *appointmentCommandsImpl) Create(ctx context.Context, req reqdto.CreateAppointmentRequest) (*queries.AppointmentView, error) {
	entity, err := req.ToDomain(u.clock)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	id, err := u.repo.Create(ctx, u.pool, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the persisted view
	view, err := u.appointmentQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *appointmentCommandsImpl) AttachProtocol(ctx context.Context, actor Actor, id int64, protocolo string) (*queries.AppointmentView, error) {
	return u.applyTransition(ctx, &actor, id, func(a *appointment.Appointment) error {
		return a.AttachProtocol(protocolo)
	})
}

func (u *appointmentCommandsImpl) FlagDivergence(ctx context.Context, actor Actor, id int64, text string) (*queries.AppointmentView, error) {
	return u.applyTransition(ctx, &actor, id, func(a *appointment.Appointment) error {
		return a.FlagDivergence(text)
	})
}

func (u *appointmentCommandsImpl) Conclude(ctx context.Context, actor Actor, id int64) (*queries.AppointmentView, error) {
	return u.applyTransition(ctx, &actor, id, func(a *appointment.Appointment) error {
		return a.Conclude()
	})
}

func (u *appointmentCommandsImpl) Cancel(ctx context.Context, actor Actor, id int64, reason string) (*queries.AppointmentView, error) {
	return u.applyTransition(ctx, &actor, id, func(a *appointment.Appointment) error {
		return a.Cancel(reason, appointment.CanceledByWorkshop)
	})
}

// CancelByCustomer is the public booking sub-resource: a soft status change,
// never a row removal.
func (u *appointmentCommandsImpl) CancelByCustomer(ctx context.Context, id int64, reason string) (*queries.AppointmentView, error) {
	if reason == "" {
		reason = defaultCustomerCancelReason
	}
	return u.applyTransition(ctx, nil, id, func(a *appointment.Appointment) error {
		return a.Cancel(reason, appointment.CanceledByCustomer)
	})
}

// applyTransition runs the shared operator-action contract: load, check the
// guard through the domain entity, then persist with a conditional update
// keyed on the status observed at read time. A caller holding a stale
// snapshot never commits, even when the live status would also permit the
// action.
func (u *appointmentCommandsImpl) applyTransition(
	ctx context.Context,
	actor *Actor,
	id int64,
	mutate func(*appointment.Appointment) error,
) (*queries.AppointmentView, error) {
	snap, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Tenant isolation: an operator only sees its own workshop's bookings
	if actor != nil && snap.WorkshopID != actor.WorkshopID {
		return nil, ErrAppointmentNotFound
	}

	entity := snapshotToDomain(snap)
	if err := mutate(entity); err != nil {
		return nil, errs.Mark(err, ErrTransitionNotAllowed)
	}

	change := TransitionChange{
		Status:             entity.Status(),
		Protocolo:          entity.Protocolo(),
		Divergencia:        entity.Divergencia(),
		MotivoCancelamento: entity.MotivoCancelamento(),
		CanceladoPor:       canceledByPtr(entity.CanceladoPor()),
	}

	matched, err := u.repo.ApplyTransition(ctx, id, snap.Status, change)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !matched {
		// The row exists but its status changed between the read and the
		// update; the caller lost the race.
		return nil, ErrConcurrentTransition
	}

	view, err := u.appointmentQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func snapshotToDomain(snap *AppointmentSnapshot) *appointment.Appointment {
	var canceladoPor *appointment.CanceledBy
	if snap.CanceladoPor != nil {
		cb := appointment.CanceledBy(*snap.CanceladoPor)
		canceladoPor = &cb
	}

	return appointment.Reconstruct(
		snap.ID,
		snap.CodigoProtocolo,
		snap.WorkshopID,
		appointment.ReconstructWorkshopInfo(snap.WorkshopName, snap.WorkshopAddress, snap.WorkshopPhone),
		appointment.ReconstructCustomer(snap.CustomerName, snap.CustomerCPF, snap.CustomerPhone, snap.CustomerEmail),
		appointment.ReconstructPayload(snap.Veiculo),
		appointment.ReconstructPayload(snap.Servicos),
		snap.PrecoTotalCentavos,
		snap.DataAgendada,
		snap.Status,
		snap.Protocolo,
		snap.Divergencia,
		snap.MotivoCancelamento,
		canceladoPor,
		snap.CreatedAt,
		snap.UpdatedAt,
	)
}

func canceledByPtr(cb *appointment.CanceledBy) *string {
	if cb == nil {
		return nil
	}
	s := cb.String()
	return &s
}
