package request

import "time"

type SetReminderRequest struct {
	CustomerID string    `json:"customer_id" binding:"required"`
	Vehicle    string    `json:"vehicle"`
	DueDate    time.Time `json:"due_date" binding:"required"`
}
