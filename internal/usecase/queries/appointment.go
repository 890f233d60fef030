package queries

import (
	"context"
	"encoding/json"
	"time"

	"oficina-agenda/internal/infra"
	"oficina-agenda/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAppointmentNotFound = errs.New("appointment not found")

// Read models (DTO for read side)
type AppointmentView struct {
	ID                 int64           `json:"id"`
	CodigoProtocolo    string          `json:"codigo_protocolo"`
	WorkshopID         uuid.UUID       `json:"workshop_id"`
	WorkshopName       string          `json:"workshop_name"`
	WorkshopAddress    string          `json:"workshop_address"`
	WorkshopPhone      string          `json:"workshop_phone"`
	CustomerName       string          `json:"customer_name"`
	CustomerCPF        string          `json:"customer_cpf"`
	CustomerPhone      string          `json:"customer_phone"`
	CustomerEmail      string          `json:"customer_email"`
	Veiculo            json.RawMessage `json:"veiculo"`
	Servicos           json.RawMessage `json:"servicos"`
	PrecoTotalCentavos int64           `json:"preco_total_centavos"`
	DataAgendada       time.Time       `json:"data_agendada"`
	Status             string          `json:"status"`
	Protocolo          *string         `json:"protocolo,omitempty"`
	Divergencia        *string         `json:"divergencia,omitempty"`
	MotivoCancelamento *string         `json:"motivo_cancelamento,omitempty"`
	CanceladoPor       *string         `json:"cancelado_por,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type AppointmentListItem struct {
	ID                 int64     `json:"id"`
	CodigoProtocolo    string    `json:"codigo_protocolo"`
	WorkshopID         uuid.UUID `json:"workshop_id"`
	WorkshopName       string    `json:"workshop_name"`
	CustomerName       string    `json:"customer_name"`
	DataAgendada       time.Time `json:"data_agendada"`
	Status             string    `json:"status"`
	PrecoTotalCentavos int64     `json:"preco_total_centavos"`
	CreatedAt          time.Time `json:"created_at"`
}

// ListFilter narrows the appointment listing. Customer matches the CPF or the
// email exactly.
type ListFilter struct {
	Status     *string
	WorkshopID *uuid.UUID
	Customer   *string
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id int64) (*AppointmentView, error)
	List(ctx context.Context, filter ListFilter) ([]*AppointmentListItem, error)
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id int64) (*AppointmentView, error)
	FindFiltered(ctx context.Context, filter ListFilter) ([]*AppointmentListItem, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id int64) (*AppointmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *appointmentQueriesImpl) List(ctx context.Context, filter ListFilter) ([]*AppointmentListItem, error) {
	return q.store.FindFiltered(ctx, filter)
}
