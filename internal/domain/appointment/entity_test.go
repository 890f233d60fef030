//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"oficina-agenda/internal/domain/appointment"
	"oficina-agenda/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createCase struct {
	name   string
	mutate func(*builder.AppointmentBuilder)
	errIs  error
}

func TestNewAppointment(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, appointment.StatusPendente, actual.Status())
		assert.True(t, appointment.IsProtocolCode(actual.CodigoProtocolo()))
		assert.Nil(t, actual.Protocolo())
		assert.Nil(t, actual.Divergencia())
		assert.Nil(t, actual.MotivoCancelamento())
	})

	t.Run("validation", func(t *testing.T) {
		runCreateCases(t, []createCase{
			{
				name:   "zero price is allowed",
				mutate: func(b *builder.AppointmentBuilder) { b.WithPreco(0) },
			},
			{
				name:   "negative price",
				mutate: func(b *builder.AppointmentBuilder) { b.WithPreco(-1) },
				errIs:  appointment.ErrNegativePrice,
			},
			{
				name:   "scheduled in the past",
				mutate: func(b *builder.AppointmentBuilder) { b.WithDataAgendada(b.Now.Add(-time.Hour)) },
				errIs:  appointment.ErrScheduledInPast,
			},
			{
				name:   "scheduled exactly now",
				mutate: func(b *builder.AppointmentBuilder) { b.WithDataAgendada(b.Now) },
				errIs:  appointment.ErrScheduledInPast,
			},
			{
				name:   "CPF with formatting is normalized",
				mutate: func(b *builder.AppointmentBuilder) { b.WithCustomerCPF("529.982.247-25") },
			},
			{
				name:   "CPF too short",
				mutate: func(b *builder.AppointmentBuilder) { b.WithCustomerCPF("12345") },
				errIs:  appointment.ErrInvalidCustomerCPF,
			},
			{
				name:   "invalid email",
				mutate: func(b *builder.AppointmentBuilder) { b.WithCustomerEmail("not-an-email") },
				errIs:  appointment.ErrInvalidCustomerEmail,
			},
		})
	})

	t.Run("distinct codes per booking", func(t *testing.T) {
		first, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)

		seen := map[string]bool{first.CodigoProtocolo(): true}
		dup := 0
		for range 50 {
			a, err := builder.NewAppointmentBuilder().BuildDomain()
			require.NoError(t, err)
			if seen[a.CodigoProtocolo()] {
				dup++
			}
			seen[a.CodigoProtocolo()] = true
		}
		// Random suffix only gives 1000 values per second; a few collisions
		// are tolerable, all-equal is not.
		assert.Less(t, dup, 50)
	})
}

func TestAttachProtocol(t *testing.T) {
	t.Run("confirms a pending appointment", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().BuildReconstructed()

		require.NoError(t, a.AttachProtocol("SO-2026-0042"))

		assert.Equal(t, appointment.StatusConfirmado, a.Status())
		require.NotNil(t, a.Protocolo())
		assert.Equal(t, "SO-2026-0042", *a.Protocolo())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().BuildReconstructed()

		require.NoError(t, a.AttachProtocol("  SO-1  "))
		assert.Equal(t, "SO-1", *a.Protocolo())
	})

	t.Run("empty protocol", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().BuildReconstructed()

		err := a.AttachProtocol("   ")
		require.ErrorIs(t, err, appointment.ErrEmptyProtocol)
		assert.Equal(t, appointment.StatusPendente, a.Status())
	})

	t.Run("only from pendente", func(t *testing.T) {
		for _, status := range []appointment.Status{
			appointment.StatusConfirmado,
			appointment.StatusDivergencia,
			appointment.StatusCancelado,
			appointment.StatusConcluido,
			appointment.StatusForaPrazo,
		} {
			a := builder.NewAppointmentBuilder().WithStatus(status).BuildReconstructed()
			require.ErrorIs(t, a.AttachProtocol("SO-1"), appointment.ErrIllegalTransition, "from %s", status)
		}
	})
}

func TestFlagDivergence(t *testing.T) {
	t.Run("from pendente", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().BuildReconstructed()

		require.NoError(t, a.FlagDivergence("veiculo divergente do cadastro"))

		assert.Equal(t, appointment.StatusDivergencia, a.Status())
		require.NotNil(t, a.Divergencia())
	})

	t.Run("from confirmado", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().AsConfirmed().BuildReconstructed()

		require.NoError(t, a.FlagDivergence("cliente nao compareceu"))
		assert.Equal(t, appointment.StatusDivergencia, a.Status())
	})

	t.Run("empty text", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().BuildReconstructed()
		require.ErrorIs(t, a.FlagDivergence(""), appointment.ErrEmptyDivergence)
	})

	t.Run("only once", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().WithDivergencia("primeira").BuildReconstructed()
		require.ErrorIs(t, a.FlagDivergence("segunda"), appointment.ErrDivergenceAlreadySet)
	})

	t.Run("not from terminal statuses", func(t *testing.T) {
		for _, status := range []appointment.Status{
			appointment.StatusCancelado,
			appointment.StatusConcluido,
			appointment.StatusForaPrazo,
		} {
			a := builder.NewAppointmentBuilder().WithStatus(status).BuildReconstructed()
			require.ErrorIs(t, a.FlagDivergence("texto"), appointment.ErrIllegalTransition, "from %s", status)
		}
	})
}

func TestConclude(t *testing.T) {
	t.Run("concludes a confirmed appointment", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().AsConfirmed().BuildReconstructed()

		require.NoError(t, a.Conclude())
		assert.Equal(t, appointment.StatusConcluido, a.Status())
	})

	t.Run("rejected without a protocol on file", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().WithStatus(appointment.StatusConfirmado).BuildReconstructed()

		require.ErrorIs(t, a.Conclude(), appointment.ErrProtocolNotOnFile)
		assert.Equal(t, appointment.StatusConfirmado, a.Status())
	})

	t.Run("only from confirmado", func(t *testing.T) {
		for _, status := range []appointment.Status{
			appointment.StatusPendente,
			appointment.StatusDivergencia,
			appointment.StatusCancelado,
			appointment.StatusConcluido,
			appointment.StatusForaPrazo,
		} {
			a := builder.NewAppointmentBuilder().WithStatus(status).WithProtocolo("SO-1").BuildReconstructed()
			require.ErrorIs(t, a.Conclude(), appointment.ErrIllegalTransition, "from %s", status)
		}
	})
}

func TestCancel(t *testing.T) {
	t.Run("by workshop with reason", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().AsConfirmed().BuildReconstructed()

		require.NoError(t, a.Cancel("pecas em falta", appointment.CanceledByWorkshop))

		assert.Equal(t, appointment.StatusCancelado, a.Status())
		require.NotNil(t, a.MotivoCancelamento())
		assert.Equal(t, "pecas em falta", *a.MotivoCancelamento())
		require.NotNil(t, a.CanceladoPor())
		assert.Equal(t, appointment.CanceledByWorkshop, *a.CanceladoPor())
	})

	t.Run("by customer records the actor", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().BuildReconstructed()

		require.NoError(t, a.Cancel("desisti", appointment.CanceledByCustomer))
		assert.Equal(t, appointment.CanceledByCustomer, *a.CanceladoPor())
	})

	t.Run("empty reason", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().BuildReconstructed()
		require.ErrorIs(t, a.Cancel("  ", appointment.CanceledByCustomer), appointment.ErrEmptyCancelReason)
	})

	t.Run("not from terminal or divergence statuses", func(t *testing.T) {
		for _, status := range []appointment.Status{
			appointment.StatusDivergencia,
			appointment.StatusCancelado,
			appointment.StatusConcluido,
			appointment.StatusForaPrazo,
		} {
			a := builder.NewAppointmentBuilder().WithStatus(status).BuildReconstructed()
			require.ErrorIs(t, a.Cancel("motivo", appointment.CanceledByWorkshop), appointment.ErrIllegalTransition, "from %s", status)
		}
	})
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		status  appointment.Status
		overdue bool
	}{
		{name: "pendente past schedule", status: appointment.StatusPendente, overdue: true},
		{name: "confirmado past schedule", status: appointment.StatusConfirmado, overdue: true},
		{name: "divergencia is left alone", status: appointment.StatusDivergencia, overdue: false},
		{name: "cancelado is left alone", status: appointment.StatusCancelado, overdue: false},
		{name: "concluido is left alone", status: appointment.StatusConcluido, overdue: false},
		{name: "fora_prazo stays put", status: appointment.StatusForaPrazo, overdue: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := builder.NewAppointmentBuilder().
				WithStatus(c.status).
				WithDataAgendada(now.Add(-time.Hour)).
				BuildReconstructed()
			assert.Equal(t, c.overdue, a.IsOverdue(now))
		})
	}

	t.Run("future schedule is never overdue", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().WithDataAgendada(now.Add(time.Hour)).BuildReconstructed()
		assert.False(t, a.IsOverdue(now))
	})
}

func runCreateCases(t *testing.T, cases []createCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAppointmentBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
