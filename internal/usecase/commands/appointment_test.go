//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina-agenda/internal/domain/appointment"
	"oficina-agenda/internal/infra"
	"oficina-agenda/internal/infra/db"
	"oficina-agenda/internal/pkg/clock"
	"oficina-agenda/internal/usecase/commands"
	"oficina-agenda/tests/common/builder"
	commandsmock "oficina-agenda/tests/mock/commands"
	queriesmock "oficina-agenda/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRepo    *commandsmock.MockAppointmentRepository
	mockQueries *queriesmock.MockAppointmentQueries
	clock       *clock.MockClock
	commands    commands.AppointmentCommands
}

func (s *AppointmentCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockAppointmentRepository(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	s.commands = commands.NewAppointmentCommands(s.mockRepo, s.mockQueries, nil, s.clock)
}

func (s *AppointmentCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentCommandsSuite(t *testing.T) {
	suite.Run(t, new(AppointmentCommandsTestSuite))
}

func (s *AppointmentCommandsTestSuite) actorFor(workshopID uuid.UUID) commands.Actor {
	return commands.Actor{
		OperatorID: uuid.New(),
		WorkshopID: workshopID,
		Role:       "operator",
	}
}

func notFoundErr() error {
	return infra.WrapRepoErr("appointment not found", errors.New("no rows in result set"), infra.KindNotFound)
}

// ================================================================================
// Create
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestCreate() {
	s.Run("persists and returns the stored view", func() {
		b := builder.NewAppointmentBuilder()
		req := b.BuildCreateRequestDTO()
		view := b.BuildView()

		s.mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, appt *appointment.Appointment) (int64, error) {
				s.Equal(appointment.StatusPendente, appt.Status())
				s.True(appointment.IsProtocolCode(appt.CodigoProtocolo()))
				return view.ID, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		actual, err := s.commands.Create(context.Background(), req)
		s.NoError(err)
		s.Equal(view, actual)
	})

	s.Run("domain validation failure never reaches the store", func() {
		req := builder.NewAppointmentBuilder().WithPreco(-1).BuildCreateRequestDTO()

		actual, err := s.commands.Create(context.Background(), req)
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrValidationFailed)
	})

	s.Run("store failure", func() {
		req := builder.NewAppointmentBuilder().BuildCreateRequestDTO()

		s.mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("insert failed", errors.New("boom")))

		actual, err := s.commands.Create(context.Background(), req)
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}

// ================================================================================
// AttachProtocol
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestAttachProtocol() {
	s.Run("confirms and stores the operator-entered protocol", func() {
		b := builder.NewAppointmentBuilder()
		snap := b.BuildSnapshot()
		view := b.AsConfirmed().BuildView()
		actor := s.actorFor(snap.WorkshopID)

		s.mockRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.mockRepo.EXPECT().
			ApplyTransition(gomock.Any(), snap.ID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, from appointment.Status, change commands.TransitionChange) (bool, error) {
				s.Equal(appointment.StatusPendente, from)
				s.Equal(appointment.StatusConfirmado, change.Status)
				s.Require().NotNil(change.Protocolo)
				s.Equal("SO-2026-0042", *change.Protocolo)
				return true, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), snap.ID).Return(view, nil)

		actual, err := s.commands.AttachProtocol(context.Background(), actor, snap.ID, "SO-2026-0042")
		s.NoError(err)
		s.Equal(view, actual)
	})

	s.Run("missing appointment", func() {
		actor := s.actorFor(uuid.New())

		s.mockRepo.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, notFoundErr())

		actual, err := s.commands.AttachProtocol(context.Background(), actor, 99, "SO-1")
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrAppointmentNotFound)
	})

	s.Run("another workshop's appointment is invisible", func() {
		snap := builder.NewAppointmentBuilder().BuildSnapshot()
		actor := s.actorFor(uuid.New())

		s.mockRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)

		actual, err := s.commands.AttachProtocol(context.Background(), actor, snap.ID, "SO-1")
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrAppointmentNotFound)
	})

	s.Run("guard failure stops before the store", func() {
		snap := builder.NewAppointmentBuilder().
			WithStatus(appointment.StatusConcluido).
			BuildSnapshot()
		actor := s.actorFor(snap.WorkshopID)

		s.mockRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)

		actual, err := s.commands.AttachProtocol(context.Background(), actor, snap.ID, "SO-1")
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrTransitionNotAllowed)
	})

	s.Run("losing the race", func() {
		snap := builder.NewAppointmentBuilder().BuildSnapshot()
		actor := s.actorFor(snap.WorkshopID)

		s.mockRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.mockRepo.EXPECT().
			ApplyTransition(gomock.Any(), snap.ID, gomock.Any(), gomock.Any()).
			Return(false, nil)

		actual, err := s.commands.AttachProtocol(context.Background(), actor, snap.ID, "SO-1")
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrConcurrentTransition)
	})
}

// ================================================================================
// Conclude
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestConclude() {
	s.Run("concludes a confirmed appointment", func() {
		b := builder.NewAppointmentBuilder().AsConfirmed()
		snap := b.BuildSnapshot()
		view := b.WithStatus(appointment.StatusConcluido).BuildView()
		actor := s.actorFor(snap.WorkshopID)

		s.mockRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.mockRepo.EXPECT().
			ApplyTransition(gomock.Any(), snap.ID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, from appointment.Status, change commands.TransitionChange) (bool, error) {
				s.Equal(appointment.StatusConfirmado, from)
				s.Equal(appointment.StatusConcluido, change.Status)
				return true, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), snap.ID).Return(view, nil)

		actual, err := s.commands.Conclude(context.Background(), actor, snap.ID)
		s.NoError(err)
		s.Equal(view, actual)
	})

	s.Run("rejected without a protocol on file", func() {
		snap := builder.NewAppointmentBuilder().
			WithStatus(appointment.StatusConfirmado).
			BuildSnapshot()
		actor := s.actorFor(snap.WorkshopID)

		s.mockRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)

		actual, err := s.commands.Conclude(context.Background(), actor, snap.ID)
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrTransitionNotAllowed)
		s.ErrorIs(err, appointment.ErrProtocolNotOnFile)
	})
}

// ================================================================================
// Cancel
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestCancel() {
	s.Run("workshop cancellation records actor and reason", func() {
		b := builder.NewAppointmentBuilder()
		snap := b.BuildSnapshot()
		view := b.WithStatus(appointment.StatusCancelado).BuildView()
		actor := s.actorFor(snap.WorkshopID)

		s.mockRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.mockRepo.EXPECT().
			ApplyTransition(gomock.Any(), snap.ID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, from appointment.Status, change commands.TransitionChange) (bool, error) {
				s.Equal(appointment.StatusPendente, from)
				s.Equal(appointment.StatusCancelado, change.Status)
				s.Require().NotNil(change.MotivoCancelamento)
				s.Equal("pecas em falta", *change.MotivoCancelamento)
				s.Require().NotNil(change.CanceladoPor)
				s.Equal("oficina", *change.CanceladoPor)
				return true, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), snap.ID).Return(view, nil)

		actual, err := s.commands.Cancel(context.Background(), actor, snap.ID, "pecas em falta")
		s.NoError(err)
		s.Equal(view, actual)
	})

	s.Run("customer cancellation defaults the reason", func() {
		b := builder.NewAppointmentBuilder()
		snap := b.BuildSnapshot()
		view := b.WithStatus(appointment.StatusCancelado).BuildView()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.mockRepo.EXPECT().
			ApplyTransition(gomock.Any(), snap.ID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, _ appointment.Status, change commands.TransitionChange) (bool, error) {
				s.Require().NotNil(change.MotivoCancelamento)
				s.Equal("cancelado pelo cliente", *change.MotivoCancelamento)
				s.Require().NotNil(change.CanceladoPor)
				s.Equal("cliente", *change.CanceladoPor)
				return true, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), snap.ID).Return(view, nil)

		actual, err := s.commands.CancelByCustomer(context.Background(), snap.ID, "")
		s.NoError(err)
		s.Equal(view, actual)
	})

	s.Run("stale cancel loses after a confirmation commits", func() {
		b := builder.NewAppointmentBuilder()
		snap := b.BuildSnapshot()
		confirmedView := b.AsConfirmed().BuildView()
		actor := s.actorFor(snap.WorkshopID)

		// Both callers read the row while it was still pendente; the store
		// only matches while the live status equals the one they observed.
		live := appointment.StatusPendente
		s.mockRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil).Times(2)
		s.mockRepo.EXPECT().
			ApplyTransition(gomock.Any(), snap.ID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, from appointment.Status, change commands.TransitionChange) (bool, error) {
				if from != live {
					return false, nil
				}
				live = change.Status
				return true, nil
			}).Times(2)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), snap.ID).Return(confirmedView, nil)

		_, err := s.commands.AttachProtocol(context.Background(), actor, snap.ID, "SO-9")
		s.NoError(err)

		actual, err := s.commands.CancelByCustomer(context.Background(), snap.ID, "")
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrConcurrentTransition)
		s.Equal(appointment.StatusConfirmado, live)
	})

	s.Run("customer cannot cancel a concluded appointment", func() {
		snap := builder.NewAppointmentBuilder().
			WithStatus(appointment.StatusConcluido).
			BuildSnapshot()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)

		actual, err := s.commands.CancelByCustomer(context.Background(), snap.ID, "mudei de ideia")
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrTransitionNotAllowed)
	})
}

// ================================================================================
// FlagDivergence
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestFlagDivergence() {
	s.Run("from confirmado", func() {
		b := builder.NewAppointmentBuilder().AsConfirmed()
		snap := b.BuildSnapshot()
		view := b.WithStatus(appointment.StatusDivergencia).BuildView()
		actor := s.actorFor(snap.WorkshopID)

		s.mockRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.mockRepo.EXPECT().
			ApplyTransition(gomock.Any(), snap.ID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, from appointment.Status, change commands.TransitionChange) (bool, error) {
				s.Equal(appointment.StatusConfirmado, from)
				s.Equal(appointment.StatusDivergencia, change.Status)
				s.Require().NotNil(change.Divergencia)
				s.Equal("cliente nao compareceu", *change.Divergencia)
				return true, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), snap.ID).Return(view, nil)

		actual, err := s.commands.FlagDivergence(context.Background(), actor, snap.ID, "cliente nao compareceu")
		s.NoError(err)
		s.Equal(view, actual)
	})

	s.Run("second divergence is rejected", func() {
		snap := builder.NewAppointmentBuilder().
			WithDivergencia("primeira anotacao").
			BuildSnapshot()
		actor := s.actorFor(snap.WorkshopID)

		s.mockRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)

		actual, err := s.commands.FlagDivergence(context.Background(), actor, snap.ID, "segunda anotacao")
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrTransitionNotAllowed)
		s.ErrorIs(err, appointment.ErrDivergenceAlreadySet)
	})
}
