package commands

import (
	"encoding/json"
	"time"

	"oficina-agenda/internal/domain/appointment"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type AppointmentSnapshot struct {
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
	Status             appointment.Status
	Protocolo          *string
	Divergencia        *string
	MotivoCancelamento *string
	CanceladoPor       *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TransitionChange carries the next status plus the auxiliary fields written
// in the same statement; nil fields are left untouched by the store.
type TransitionChange struct {
	Status             appointment.Status
	Protocolo          *string
	Divergencia        *string
	MotivoCancelamento *string
	CanceladoPor       *string
}

type OperatorSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	WorkshopID   uuid.UUID
	IsActive     bool
}

type WorkshopSnapshot struct {
	ID      uuid.UUID
	Name    string
	Address string
	Phone   string
	Email   string
}

// Actor identifies the authenticated operator performing an admin action.
type Actor struct {
	OperatorID uuid.UUID
	WorkshopID uuid.UUID
	Role       string
}
