package appointment

import (
	"errors"
	"strings"
	"time"

	"oficina-agenda/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrEmptyProtocol        = errors.New("protocol is required")
	ErrEmptyDivergence      = errors.New("divergence text is required")
	ErrEmptyCancelReason    = errors.New("cancellation reason is required")
	ErrProtocolNotOnFile    = errors.New("cannot conclude without a protocol on file")
	ErrDivergenceAlreadySet = errors.New("appointment already has a divergence")
	ErrIllegalTransition    = errors.New("action not allowed in current status")
	ErrScheduledInPast      = errors.New("scheduled time must be in the future")
	ErrNegativePrice        = errors.New("total price cannot be negative")
)

type Appointment struct {
	id                 int64
	codigoProtocolo    string
	workshopID         uuid.UUID
	workshop           WorkshopInfo
	customer           Customer
	veiculo            Payload
	servicos           Payload
	precoTotalCentavos int64
	dataAgendada       time.Time
	status             Status
	protocolo          *string
	divergencia        *string
	motivoCancelamento *string
	canceladoPor       *CanceledBy
	createdAt          time.Time
	updatedAt          time.Time
}

// NewAppointment creates a pending booking with a freshly issued system code.
// The id is assigned by the store on insert.
func NewAppointment(
	clk clock.Clock,
	workshopID uuid.UUID,
	workshop WorkshopInfo,
	customer Customer,
	veiculo, servicos Payload,
	precoTotalCentavos int64,
	dataAgendada time.Time,
) (*Appointment, error) {
	if precoTotalCentavos < 0 {
		return nil, ErrNegativePrice
	}

	now := clk.Now()
	if !dataAgendada.After(now) {
		return nil, ErrScheduledInPast
	}

	return &Appointment{
		codigoProtocolo:    GenerateProtocolCode(now),
		workshopID:         workshopID,
		workshop:           workshop,
		customer:           customer,
		veiculo:            veiculo,
		servicos:           servicos,
		precoTotalCentavos: precoTotalCentavos,
		dataAgendada:       dataAgendada,
		status:             StatusPendente,
	}, nil
}

func Reconstruct(
	id int64,
	codigoProtocolo string,
	workshopID uuid.UUID,
	workshop WorkshopInfo,
	customer Customer,
	veiculo, servicos Payload,
	precoTotalCentavos int64,
	dataAgendada time.Time,
	status Status,
	protocolo, divergencia, motivoCancelamento *string,
	canceladoPor *CanceledBy,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:                 id,
		codigoProtocolo:    codigoProtocolo,
		workshopID:         workshopID,
		workshop:           workshop,
		customer:           customer,
		veiculo:            veiculo,
		servicos:           servicos,
		precoTotalCentavos: precoTotalCentavos,
		dataAgendada:       dataAgendada,
		status:             status,
		protocolo:          protocolo,
		divergencia:        divergencia,
		motivoCancelamento: motivoCancelamento,
		canceladoPor:       canceladoPor,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// AttachProtocol records the customer-relayed protocol and confirms the
// booking. The operator-entered value is deliberately distinct from the
// system-issued code: only the customer can supply it, so confirmation acts
// as a second factor.
func (a *Appointment) AttachProtocol(protocolo string) error {
	protocolo = strings.TrimSpace(protocolo)
	if protocolo == "" {
		return ErrEmptyProtocol
	}
	if a.status != StatusPendente {
		return ErrIllegalTransition
	}

	a.status = StatusConfirmado
	a.protocolo = &protocolo
	return nil
}

// FlagDivergence halts normal progression with an operator-noted discrepancy
// (no-show, wrong vehicle, etc.). A divergence can be flagged only once.
func (a *Appointment) FlagDivergence(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyDivergence
	}
	if a.divergencia != nil {
		return ErrDivergenceAlreadySet
	}
	if a.status != StatusPendente && a.status != StatusConfirmado {
		return ErrIllegalTransition
	}

	a.status = StatusDivergencia
	a.divergencia = &text
	return nil
}

// Conclude finishes a confirmed booking. It is rejected whenever no protocol
// is on file, regardless of caller intent: concluding asserts that the
// customer-verified protocol matched.
func (a *Appointment) Conclude() error {
	if a.protocolo == nil {
		return ErrProtocolNotOnFile
	}
	if a.status != StatusConfirmado {
		return ErrIllegalTransition
	}

	a.status = StatusConcluido
	return nil
}

func (a *Appointment) Cancel(reason string, by CanceledBy) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyCancelReason
	}
	if a.status != StatusPendente && a.status != StatusConfirmado {
		return ErrIllegalTransition
	}

	a.status = StatusCancelado
	a.motivoCancelamento = &reason
	a.canceladoPor = &by
	return nil
}

// IsOverdue reports whether the sweeper would reclassify this appointment.
func (a *Appointment) IsOverdue(now time.Time) bool {
	if a.status != StatusPendente && a.status != StatusConfirmado {
		return false
	}
	return a.dataAgendada.Before(now)
}

func (a *Appointment) ID() int64                   { return a.id }
func (a *Appointment) CodigoProtocolo() string     { return a.codigoProtocolo }
func (a *Appointment) WorkshopID() uuid.UUID       { return a.workshopID }
func (a *Appointment) Workshop() WorkshopInfo      { return a.workshop }
func (a *Appointment) Customer() Customer          { return a.customer }
func (a *Appointment) Veiculo() Payload            { return a.veiculo }
func (a *Appointment) Servicos() Payload           { return a.servicos }
func (a *Appointment) PrecoTotalCentavos() int64   { return a.precoTotalCentavos }
func (a *Appointment) DataAgendada() time.Time     { return a.dataAgendada }
func (a *Appointment) Status() Status              { return a.status }
func (a *Appointment) Protocolo() *string          { return a.protocolo }
func (a *Appointment) Divergencia() *string        { return a.divergencia }
func (a *Appointment) MotivoCancelamento() *string { return a.motivoCancelamento }
func (a *Appointment) CanceladoPor() *CanceledBy   { return a.canceladoPor }
func (a *Appointment) CreatedAt() time.Time        { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time        { return a.updatedAt }
