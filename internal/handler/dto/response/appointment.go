package response

import (
	"encoding/json"
	"time"

	"oficina-agenda/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
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

type AppointmentListResponse struct {
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

func FromAppointmentView(rm *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 rm.ID,
		CodigoProtocolo:    rm.CodigoProtocolo,
		WorkshopID:         rm.WorkshopID,
		WorkshopName:       rm.WorkshopName,
		WorkshopAddress:    rm.WorkshopAddress,
		WorkshopPhone:      rm.WorkshopPhone,
		CustomerName:       rm.CustomerName,
		CustomerCPF:        rm.CustomerCPF,
		CustomerPhone:      rm.CustomerPhone,
		CustomerEmail:      rm.CustomerEmail,
		Veiculo:            rm.Veiculo,
		Servicos:           rm.Servicos,
		PrecoTotalCentavos: rm.PrecoTotalCentavos,
		DataAgendada:       rm.DataAgendada,
		Status:             rm.Status,
		Protocolo:          rm.Protocolo,
		Divergencia:        rm.Divergencia,
		MotivoCancelamento: rm.MotivoCancelamento,
		CanceladoPor:       rm.CanceladoPor,
		CreatedAt:          rm.CreatedAt,
		UpdatedAt:          rm.UpdatedAt,
	}
}

func FromAppointmentListItems(rms []*queries.AppointmentListItem) []*AppointmentListResponse {
	out := make([]*AppointmentListResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, &AppointmentListResponse{
			ID:                 rm.ID,
			CodigoProtocolo:    rm.CodigoProtocolo,
			WorkshopID:         rm.WorkshopID,
			WorkshopName:       rm.WorkshopName,
			CustomerName:       rm.CustomerName,
			DataAgendada:       rm.DataAgendada,
			Status:             rm.Status,
			PrecoTotalCentavos: rm.PrecoTotalCentavos,
			CreatedAt:          rm.CreatedAt,
		})
	}
	return out
}
