package usecase

import (
	"context"
	"time"

	"oficina-agenda/internal/domain/reminder"
	"oficina-agenda/internal/pkg/clock"
	"oficina-agenda/internal/pkg/errs"
)

var ErrReminderNotFound = errs.New("reminder not found")

// ReminderRepository is the per-customer single-record store. Implementations
// are instantiated at construction time so each test can supply its own
// isolated instance.
type ReminderRepository interface {
	Upsert(ctx context.Context, r reminder.Reminder) error
	Get(ctx context.Context, customerID string) (reminder.Reminder, bool, error)
}

type ReminderUseCase interface {
	Set(ctx context.Context, customerID, vehicle string, dueDate time.Time) (reminder.Reminder, error)
	Get(ctx context.Context, customerID string) (reminder.Reminder, error)
}

type reminderUseCaseImpl struct {
	repo  ReminderRepository
	clock clock.Clock
}

func NewReminderUseCase(repo ReminderRepository, clock clock.Clock) ReminderUseCase {
	return &reminderUseCaseImpl{repo: repo, clock: clock}
}

func (u *reminderUseCaseImpl) Set(ctx context.Context, customerID, vehicle string, dueDate time.Time) (reminder.Reminder, error) {
	r, err := reminder.New(customerID, vehicle, dueDate, u.clock.Now())
	if err != nil {
		return reminder.Reminder{}, err
	}

	if err := u.repo.Upsert(ctx, r); err != nil {
		return reminder.Reminder{}, err
	}
	return r, nil
}

func (u *reminderUseCaseImpl) Get(ctx context.Context, customerID string) (reminder.Reminder, error) {
	r, ok, err := u.repo.Get(ctx, customerID)
	if err != nil {
		return reminder.Reminder{}, err
	}
	if !ok {
		return reminder.Reminder{}, ErrReminderNotFound
	}
	return r, nil
}
