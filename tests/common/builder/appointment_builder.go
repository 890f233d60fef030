//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	domappt "oficina-agenda/internal/domain/appointment"
	reqdto "oficina-agenda/internal/handler/dto/request"
	"oficina-agenda/internal/pkg/clock"
	"oficina-agenda/internal/usecase/commands"
	"oficina-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentBuilder struct {
	ID                 int64
	CodigoProtocolo    string
	WorkshopID         uuid.UUID
	WorkshopName       string
	WorkshopAddress    string
	WorkshopPhone      string
	CustomerName       string
	CustomerCPF        string
	CustomerPhone      string
	CustomerEmail      string
	Veiculo            json.RawMessage
	Servicos           json.RawMessage
	PrecoTotalCentavos int64
	DataAgendada       time.Time
	Status             domappt.Status
	Protocolo          *string
	Divergencia        *string
	MotivoCancelamento *string
	CanceladoPor       *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Now time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		ID:                 1,
		CodigoProtocolo:    "OIL123456789",
		WorkshopID:         uuid.New(),
		WorkshopName:       "Oficina do Zé",
		WorkshopAddress:    "Rua das Palmeiras, 100",
		WorkshopPhone:      "11988887777",
		CustomerName:       "Maria Silva",
		CustomerCPF:        "52998224725",
		CustomerPhone:      "11999990000",
		CustomerEmail:      "maria@example.com",
		Veiculo:            json.RawMessage(`{"marca":"Fiat","modelo":"Uno","placa":"ABC1D23"}`),
		Servicos:           json.RawMessage(`[{"nome":"troca de oleo","preco_centavos":15000}]`),
		PrecoTotalCentavos: 15000,
		DataAgendada:       now.Add(48 * time.Hour),
		Status:             domappt.StatusPendente,
		CreatedAt:          now,
		UpdatedAt:          now,
		Now:                now,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

// Build methods

func (b *AppointmentBuilder) BuildDomain() (*domappt.Appointment, error) {
	return b.BuildCreateRequestDTO().ToDomain(clock.NewMockClock(b.Now))
}

// BuildReconstructed returns a persisted-state entity, useful for exercising
// transitions from arbitrary statuses.
func (b *AppointmentBuilder) BuildReconstructed() *domappt.Appointment {
	var canceladoPor *domappt.CanceledBy
	if b.CanceladoPor != nil {
		cb := domappt.CanceledBy(*b.CanceladoPor)
		canceladoPor = &cb
	}

	return domappt.Reconstruct(
		b.ID,
		b.CodigoProtocolo,
		b.WorkshopID,
		domappt.ReconstructWorkshopInfo(b.WorkshopName, b.WorkshopAddress, b.WorkshopPhone),
		domappt.ReconstructCustomer(b.CustomerName, b.CustomerCPF, b.CustomerPhone, b.CustomerEmail),
		domappt.ReconstructPayload(b.Veiculo),
		domappt.ReconstructPayload(b.Servicos),
		b.PrecoTotalCentavos,
		b.DataAgendada,
		b.Status,
		b.Protocolo,
		b.Divergencia,
		b.MotivoCancelamento,
		canceladoPor,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		WorkshopID:         b.WorkshopID,
		WorkshopName:       b.WorkshopName,
		WorkshopAddress:    b.WorkshopAddress,
		WorkshopPhone:      b.WorkshopPhone,
		CustomerName:       b.CustomerName,
		CustomerCPF:        b.CustomerCPF,
		CustomerPhone:      b.CustomerPhone,
		CustomerEmail:      b.CustomerEmail,
		Veiculo:            b.Veiculo,
		Servicos:           b.Servicos,
		PrecoTotalCentavos: b.PrecoTotalCentavos,
		DataAgendada:       b.DataAgendada,
	}
}

func (b *AppointmentBuilder) BuildSnapshot() *commands.AppointmentSnapshot {
	return &commands.AppointmentSnapshot{
		ID:                 b.ID,
		CodigoProtocolo:    b.CodigoProtocolo,
		WorkshopID:         b.WorkshopID,
		WorkshopName:       b.WorkshopName,
		WorkshopAddress:    b.WorkshopAddress,
		WorkshopPhone:      b.WorkshopPhone,
		CustomerName:       b.CustomerName,
		CustomerCPF:        b.CustomerCPF,
		CustomerPhone:      b.CustomerPhone,
		CustomerEmail:      b.CustomerEmail,
		Veiculo:            b.Veiculo,
		Servicos:           b.Servicos,
		PrecoTotalCentavos: b.PrecoTotalCentavos,
		DataAgendada:       b.DataAgendada,
		Status:             b.Status,
		Protocolo:          b.Protocolo,
		Divergencia:        b.Divergencia,
		MotivoCancelamento: b.MotivoCancelamento,
		CanceladoPor:       b.CanceladoPor,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// BuildView maps the snapshot onto the read model; the field sets are kept
// aligned so a plain copy is enough.
func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	var view queries.AppointmentView
	if err := copier.Copy(&view, b.BuildSnapshot()); err != nil {
		panic(err)
	}
	view.Status = b.Status.String()
	return &view
}

func (b *AppointmentBuilder) BuildListItem() *queries.AppointmentListItem {
	return &queries.AppointmentListItem{
		ID:                 b.ID,
		CodigoProtocolo:    b.CodigoProtocolo,
		WorkshopID:         b.WorkshopID,
		WorkshopName:       b.WorkshopName,
		CustomerName:       b.CustomerName,
		DataAgendada:       b.DataAgendada,
		Status:             b.Status.String(),
		PrecoTotalCentavos: b.PrecoTotalCentavos,
		CreatedAt:          b.CreatedAt,
	}
}

// Fluent builder methods

func (b *AppointmentBuilder) WithStatus(status domappt.Status) *AppointmentBuilder {
	b.Status = status
	return b
}

func (b *AppointmentBuilder) WithProtocolo(protocolo string) *AppointmentBuilder {
	b.Protocolo = &protocolo
	return b
}

func (b *AppointmentBuilder) WithDivergencia(text string) *AppointmentBuilder {
	b.Divergencia = &text
	return b
}

func (b *AppointmentBuilder) WithWorkshopID(id uuid.UUID) *AppointmentBuilder {
	b.WorkshopID = id
	return b
}

func (b *AppointmentBuilder) WithDataAgendada(at time.Time) *AppointmentBuilder {
	b.DataAgendada = at
	return b
}

func (b *AppointmentBuilder) WithPreco(centavos int64) *AppointmentBuilder {
	b.PrecoTotalCentavos = centavos
	return b
}

func (b *AppointmentBuilder) WithCustomerCPF(cpf string) *AppointmentBuilder {
	b.CustomerCPF = cpf
	return b
}

func (b *AppointmentBuilder) WithCustomerEmail(email string) *AppointmentBuilder {
	b.CustomerEmail = email
	return b
}

func (b *AppointmentBuilder) AsConfirmed() *AppointmentBuilder {
	protocolo := "SO-2026-0001"
	b.Status = domappt.StatusConfirmado
	b.Protocolo = &protocolo
	return b
}

func (b *AppointmentBuilder) AsOverdue() *AppointmentBuilder {
	b.DataAgendada = b.Now.Add(-24 * time.Hour)
	return b
}
