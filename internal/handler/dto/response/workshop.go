package response

import (
	"oficina-agenda/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisteredWorkshopResponse struct {
	WorkshopID uuid.UUID `json:"workshop_id"`
	OperatorID uuid.UUID `json:"operator_id"`
}

func FromRegisterResult(res *commands.RegisterWorkshopResult) *RegisteredWorkshopResponse {
	return &RegisteredWorkshopResponse{
		WorkshopID: res.WorkshopID,
		OperatorID: res.OperatorID,
	}
}
