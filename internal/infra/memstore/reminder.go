package memstore

import (
	"context"
	"sync"

	"oficina-agenda/internal/domain/reminder"
)

// ReminderStore keeps one reminder per customer, last write wins. It is
// constructed per instance (no package-level state) so each test run gets an
// isolated store.
type ReminderStore struct {
	mu        sync.RWMutex
	reminders map[string]reminder.Reminder
}

func NewReminderStore() *ReminderStore {
	return &ReminderStore{
		reminders: make(map[string]reminder.Reminder),
	}
}

func (s *ReminderStore) Upsert(_ context.Context, r reminder.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reminders[r.CustomerID] = r
	return nil
}

func (s *ReminderStore) Get(_ context.Context, customerID string) (reminder.Reminder, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reminders[customerID]
	return r, ok, nil
}
