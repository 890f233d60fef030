//go:build unit

package memstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"oficina-agenda/internal/domain/reminder"
	"oficina-agenda/internal/infra/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderStore(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("get before set", func(t *testing.T) {
		store := memstore.NewReminderStore()

		_, ok, err := store.Get(ctx, "52998224725")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("upsert then get", func(t *testing.T) {
		store := memstore.NewReminderStore()

		r := reminder.Reminder{CustomerID: "52998224725", Vehicle: "Fiat Uno", DueDate: due, UpdatedAt: time.Now()}
		require.NoError(t, store.Upsert(ctx, r))

		got, ok, err := store.Get(ctx, "52998224725")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, r, got)
	})

	t.Run("last write wins", func(t *testing.T) {
		store := memstore.NewReminderStore()

		first := reminder.Reminder{CustomerID: "52998224725", Vehicle: "Fiat Uno", DueDate: due}
		second := reminder.Reminder{CustomerID: "52998224725", Vehicle: "VW Gol", DueDate: due.Add(30 * 24 * time.Hour)}

		require.NoError(t, store.Upsert(ctx, first))
		require.NoError(t, store.Upsert(ctx, second))

		got, ok, err := store.Get(ctx, "52998224725")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, second, got)
	})

	t.Run("customers do not collide", func(t *testing.T) {
		store := memstore.NewReminderStore()

		require.NoError(t, store.Upsert(ctx, reminder.Reminder{CustomerID: "a", Vehicle: "Uno", DueDate: due}))
		require.NoError(t, store.Upsert(ctx, reminder.Reminder{CustomerID: "b", Vehicle: "Gol", DueDate: due}))

		got, ok, _ := store.Get(ctx, "a")
		require.True(t, ok)
		assert.Equal(t, "Uno", got.Vehicle)
	})

	t.Run("instances are isolated", func(t *testing.T) {
		first := memstore.NewReminderStore()
		second := memstore.NewReminderStore()

		require.NoError(t, first.Upsert(ctx, reminder.Reminder{CustomerID: "a", DueDate: due}))

		_, ok, err := second.Get(ctx, "a")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("concurrent writers", func(t *testing.T) {
		store := memstore.NewReminderStore()

		var wg sync.WaitGroup
		for i := range 20 {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_ = store.Upsert(ctx, reminder.Reminder{CustomerID: "x", Vehicle: "Uno", DueDate: due.AddDate(0, 0, n)})
			}(i)
		}
		wg.Wait()

		_, ok, err := store.Get(ctx, "x")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
