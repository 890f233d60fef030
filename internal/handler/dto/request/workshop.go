package request

type RegisterWorkshopRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`

	OperatorEmail    string `json:"operator_email" binding:"required,email"`
	OperatorPassword string `json:"operator_password" binding:"required,min=8"`
}
