package reminder

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidCustomerID = errors.New("customer id is required")
	ErrInvalidDueDate    = errors.New("due date is required")
)

// Reminder is an oil-change due note. One per customer, last write wins; it is
// never persisted.
type Reminder struct {
	CustomerID string
	Vehicle    string
	DueDate    time.Time
	UpdatedAt  time.Time
}

func New(customerID, vehicle string, dueDate, now time.Time) (Reminder, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return Reminder{}, ErrInvalidCustomerID
	}
	if dueDate.IsZero() {
		return Reminder{}, ErrInvalidDueDate
	}

	return Reminder{
		CustomerID: customerID,
		Vehicle:    strings.TrimSpace(vehicle),
		DueDate:    dueDate,
		UpdatedAt:  now,
	}, nil
}
