package request

import (
	"encoding/json"
	"time"

	"oficina-agenda/internal/domain/appointment"
	"oficina-agenda/internal/pkg/clock"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	WorkshopID         uuid.UUID       `json:"workshop_id" binding:"required"`
	WorkshopName       string          `json:"workshop_name" binding:"required"`
	WorkshopAddress    string          `json:"workshop_address"`
	WorkshopPhone      string          `json:"workshop_phone"`
	CustomerName       string          `json:"customer_name" binding:"required"`
	CustomerCPF        string          `json:"customer_cpf" binding:"required"`
	CustomerPhone      string          `json:"customer_phone" binding:"required"`
	CustomerEmail      string          `json:"customer_email" binding:"required,email"`
	Veiculo            json.RawMessage `json:"veiculo" binding:"required"`
	Servicos           json.RawMessage `json:"servicos" binding:"required"`
	PrecoTotalCentavos int64           `json:"preco_total_centavos" binding:"min=0"`
	DataAgendada       time.Time       `json:"data_agendada" binding:"required"`
}

func (r CreateAppointmentRequest) ToDomain(clk clock.Clock) (*appointment.Appointment, error) {
	workshopInfo, err := appointment.NewWorkshopInfo(r.WorkshopName, r.WorkshopAddress, r.WorkshopPhone)
	if err != nil {
		return nil, err
	}

	customer, err := appointment.NewCustomer(r.CustomerName, r.CustomerCPF, r.CustomerPhone, r.CustomerEmail)
	if err != nil {
		return nil, err
	}

	veiculo, err := appointment.NewPayload(r.Veiculo)
	if err != nil {
		return nil, err
	}

	servicos, err := appointment.NewPayload(r.Servicos)
	if err != nil {
		return nil, err
	}

	return appointment.NewAppointment(
		clk,
		r.WorkshopID,
		workshopInfo,
		customer,
		veiculo,
		servicos,
		r.PrecoTotalCentavos,
		r.DataAgendada,
	)
}

type AttachProtocolRequest struct {
	Protocolo string `json:"protocolo" binding:"required"`
}

type FlagDivergenceRequest struct {
	Divergencia string `json:"divergencia" binding:"required"`
}

type CancelAppointmentRequest struct {
	Motivo string `json:"motivo" binding:"required"`
}

// CustomerCancelRequest is the public cancellation sub-resource body; the
// reason is optional and defaults server-side.
type CustomerCancelRequest struct {
	Motivo string `json:"motivo"`
}
