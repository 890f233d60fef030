//go:build unit

package appointment_test

import (
	"strings"
	"testing"
	"time"

	"oficina-agenda/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
)

func TestGenerateProtocolCode(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("format", func(t *testing.T) {
		code := appointment.GenerateProtocolCode(now)

		assert.Len(t, code, 12)
		assert.True(t, strings.HasPrefix(code, appointment.ProtocolCodePrefix))
		assert.True(t, appointment.IsProtocolCode(code))
	})

	t.Run("timestamp segment is zero padded", func(t *testing.T) {
		// Unix time ending in 000007 keeps its leading zeros
		at := time.Unix(1_000_000_007, 0)
		code := appointment.GenerateProtocolCode(at)

		assert.Equal(t, "000007", code[3:9])
	})
}

func TestIsProtocolCode(t *testing.T) {
	cases := []struct {
		code  string
		valid bool
	}{
		{"OIL123456789", true},
		{"OIL000000000", true},
		{"oil123456789", false},
		{"OIL12345678", false},
		{"OIL1234567890", false},
		{"OIL12345678a", false},
		{"123456789OIL", false},
		{"", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.valid, appointment.IsProtocolCode(c.code), c.code)
	}
}

func TestTransitionTable(t *testing.T) {
	t.Run("eligible sources", func(t *testing.T) {
		assert.ElementsMatch(t,
			[]appointment.Status{appointment.StatusPendente},
			appointment.EligibleFrom(appointment.ActionAttachProtocol))
		assert.ElementsMatch(t,
			[]appointment.Status{appointment.StatusPendente, appointment.StatusConfirmado},
			appointment.EligibleFrom(appointment.ActionFlagDivergence))
		assert.ElementsMatch(t,
			[]appointment.Status{appointment.StatusConfirmado},
			appointment.EligibleFrom(appointment.ActionConclude))
		assert.ElementsMatch(t,
			[]appointment.Status{appointment.StatusPendente, appointment.StatusConfirmado},
			appointment.EligibleFrom(appointment.ActionCancel))
	})

	t.Run("targets", func(t *testing.T) {
		assert.Equal(t, appointment.StatusConfirmado, appointment.Target(appointment.ActionAttachProtocol))
		assert.Equal(t, appointment.StatusDivergencia, appointment.Target(appointment.ActionFlagDivergence))
		assert.Equal(t, appointment.StatusConcluido, appointment.Target(appointment.ActionConclude))
		assert.Equal(t, appointment.StatusCancelado, appointment.Target(appointment.ActionCancel))
	})

	t.Run("unknown action has no sources", func(t *testing.T) {
		assert.Nil(t, appointment.EligibleFrom(appointment.Action("reopen")))
	})

	t.Run("terminal statuses never appear as sources", func(t *testing.T) {
		for _, action := range []appointment.Action{
			appointment.ActionAttachProtocol,
			appointment.ActionFlagDivergence,
			appointment.ActionConclude,
			appointment.ActionCancel,
		} {
			for _, from := range appointment.EligibleFrom(action) {
				assert.False(t, from.IsTerminal(), "%s from %s", action, from)
			}
		}
	})

	t.Run("sweep eligible matches non-terminal progress statuses", func(t *testing.T) {
		assert.ElementsMatch(t,
			[]appointment.Status{appointment.StatusPendente, appointment.StatusConfirmado},
			appointment.SweepEligible())
	})
}
