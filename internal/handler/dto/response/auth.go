package response

import (
	"oficina-agenda/internal/usecase/commands"

	"github.com/google/uuid"
)

type OperatorResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	WorkshopID uuid.UUID `json:"workshop_id"`
}

func FromOperatorSnapshot(snap *commands.OperatorSnapshot) *OperatorResponse {
	return &OperatorResponse{
		ID:         snap.ID,
		Email:      snap.Email,
		Role:       snap.Role,
		WorkshopID: snap.WorkshopID,
	}
}
