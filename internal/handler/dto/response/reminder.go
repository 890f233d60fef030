package response

import (
	"time"

	"oficina-agenda/internal/domain/reminder"
)

type ReminderResponse struct {
	CustomerID string    `json:"customer_id"`
	Vehicle    string    `json:"vehicle"`
	DueDate    time.Time `json:"due_date"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromReminder(r reminder.Reminder) *ReminderResponse {
	return &ReminderResponse{
		CustomerID: r.CustomerID,
		Vehicle:    r.Vehicle,
		DueDate:    r.DueDate,
		UpdatedAt:  r.UpdatedAt,
	}
}
