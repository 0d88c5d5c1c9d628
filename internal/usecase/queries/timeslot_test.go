//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/domain/timeslot"
	"mentor-availability/internal/infra"
	"mentor-availability/internal/pkg/errs"
	"mentor-availability/internal/usecase/queries"
	"mentor-availability/internal/usecase/shared"
	"mentor-availability/tests/common/builder"
	sharedmock "mentor-availability/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimeslotQueriesTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	mockStore    *sharedmock.MockAvailabilityStore
	mockDefaults *sharedmock.MockDefaultsProvider
	mentorID     uuid.UUID
	q            queries.TimeslotQueries
}

func (s *TimeslotQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = sharedmock.NewMockAvailabilityStore(s.mockCtrl)
	s.mockDefaults = sharedmock.NewMockDefaultsProvider(s.mockCtrl)
	s.mentorID = uuid.New()
	s.q = queries.NewTimeslotQueries(s.mockStore, s.mockDefaults, queries.NewFormatter(time.UTC), slog.New(slog.DiscardHandler))
}

func (s *TimeslotQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTimeslotQueriesSuite(t *testing.T) {
	suite.Run(t, new(TimeslotQueriesTestSuite))
}

func (s *TimeslotQueriesTestSuite) TestListAll() {
	s.Run("success: formats and sorts by start", func() {
		later := builder.NewTimeslotBuilder().With(func(b *builder.TimeslotBuilder) {
			start := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
			b.Start = &start
			b.End = nil
		})
		earlier := builder.NewTimeslotBuilder()
		s.mockStore.EXPECT().ListTimeslots(gomock.Any(), s.mentorID).
			Return([]shared.AnnotatedTimeslot{later.BuildAnnotated(), earlier.BuildAnnotated()}, nil)

		res := s.q.ListAll(s.ctx, s.mentorID)

		s.True(res.Success)
		s.Require().Len(res.Data, 2)
		s.Equal(earlier.ID, res.Data[0].ID)
		s.Equal("Wed, Jan 1", res.Data[0].DateLabel)
		s.Equal("TBD", res.Data[1].TimeRangeLabel)
		s.Equal("60 min", res.Data[1].DurationLabel)
	})

	s.Run("error: transport failure yields an empty list", func() {
		s.mockStore.EXPECT().ListTimeslots(gomock.Any(), s.mentorID).
			Return(nil, infra.WrapRepoErr("list timeslots", errs.New("dial tcp: refused"), infra.KindTransport))

		res := s.q.ListAll(s.ctx, s.mentorID)

		s.False(res.Success)
		s.NotNil(res.Data)
		s.Empty(res.Data)
		s.True(errs.Is(res.Err, errs.ErrTransport))
	})
}

func (s *TimeslotQueriesTestSuite) TestGet() {
	s.Run("success: booked slot carries its reference", func() {
		ref := timeslot.NewBookingRef("42")
		b := builder.NewTimeslotBuilder().With(func(b *builder.TimeslotBuilder) {
			b.Signals.Booking = &timeslot.Booking{ID: ref}
		})
		s.mockStore.EXPECT().GetTimeslot(gomock.Any(), s.mentorID, b.ID).Return(b.BuildAnnotated(), nil)

		res := s.q.Get(s.ctx, s.mentorID, b.ID)

		s.True(res.Success)
		s.Equal(timeslot.StatusBooked, res.Data.Status)
		s.Equal(*ref, *res.Data.BookingRef)
		s.Equal("$80", res.Data.PriceLabel)
	})

	s.Run("error: not found", func() {
		id := uuid.New()
		s.mockStore.EXPECT().GetTimeslot(gomock.Any(), s.mentorID, id).
			Return(shared.AnnotatedTimeslot{}, infra.WrapRepoErr("get timeslot", errs.ErrTimeslotNotFound, infra.KindNotFound))

		res := s.q.Get(s.ctx, s.mentorID, id)

		s.False(res.Success)
		s.Nil(res.Data)
		s.Equal("timeslot not found", res.Message)
	})
}

func (s *TimeslotQueriesTestSuite) TestAvailability() {
	sess := builder.NewSessionBuilder().BuildDomain()
	open := builder.NewTimeslotBuilder().With(func(b *builder.TimeslotBuilder) { b.SessionID = sess.ID() })
	booked := builder.NewTimeslotBuilder().With(func(b *builder.TimeslotBuilder) { b.SessionID = sess.ID() }).Booked()
	stored := []shared.SessionTimeslots{{Session: sess, Timeslots: []*timeslot.Timeslot{open.BuildDomain(), booked.BuildDomain()}}}

	s.Run("offer view hides booked slots", func() {
		s.mockStore.EXPECT().ListSessions(gomock.Any(), s.mentorID).Return(stored, nil)

		res := s.q.Availability(s.ctx, s.mentorID, queries.ViewOffer, queries.SortByDate)

		s.True(res.Success)
		s.Require().Len(res.Data, 1)
		s.Equal(open.ID, res.Data[0].ID)
	})

	s.Run("manage view lists both", func() {
		s.mockStore.EXPECT().ListSessions(gomock.Any(), s.mentorID).Return(stored, nil)

		res := s.q.Availability(s.ctx, s.mentorID, queries.ViewManage, queries.SortByDate)

		s.Len(res.Data, 2)
	})
}

func (s *TimeslotQueriesTestSuite) TestRecentlyAdded() {
	var items []shared.AnnotatedTimeslot
	for day := 1; day <= 4; day++ {
		b := builder.NewTimeslotBuilder().With(func(b *builder.TimeslotBuilder) {
			start := time.Date(2025, 1, day, 10, 0, 0, 0, time.UTC)
			b.Start = &start
		})
		items = append(items, b.BuildAnnotated())
	}
	s.mockStore.EXPECT().ListTimeslots(gomock.Any(), s.mentorID).Return(items, nil)

	res := s.q.RecentlyAdded(s.ctx, s.mentorID, 2)

	s.True(res.Success)
	s.Require().Len(res.Data, 2)
	s.Equal(4, res.Data[0].StartInstant.Day())
	s.Equal(3, res.Data[1].StartInstant.Day())
}

func (s *TimeslotQueriesTestSuite) TestSessions() {
	sess := builder.NewSessionBuilder().BuildDomain()
	slot := builder.NewTimeslotBuilder().With(func(b *builder.TimeslotBuilder) { b.SessionID = sess.ID() })
	s.mockStore.EXPECT().ListSessions(gomock.Any(), s.mentorID).
		Return([]shared.SessionTimeslots{{Session: sess, Timeslots: []*timeslot.Timeslot{slot.BuildDomain()}}}, nil)

	res := s.q.Sessions(s.ctx, s.mentorID)

	s.True(res.Success)
	s.Require().Len(res.Data, 1)
	s.Equal(sess.ID(), res.Data[0].ID)
	s.Equal("Cafe Central", res.Data[0].Timeslots[0].LocationLabel)
}

func (s *TimeslotQueriesTestSuite) TestSessionDefaults() {
	s.Run("success", func() {
		want := builder.NewSessionBuilder().BuildDefaults()
		s.mockDefaults.EXPECT().Defaults(gomock.Any(), s.mentorID).Return(want, nil)

		res := s.q.SessionDefaults(s.ctx, s.mentorID)

		s.True(res.Success)
		s.Equal(want, res.Data)
	})

	s.Run("error: profile missing", func() {
		s.mockDefaults.EXPECT().Defaults(gomock.Any(), s.mentorID).
			Return(session.Defaults{}, infra.WrapRepoErr("profile", errs.ErrProfileNotFound, infra.KindNotFound))

		res := s.q.SessionDefaults(s.ctx, s.mentorID)

		s.False(res.Success)
		s.Equal("mentor profile not found", res.Message)
	})
}
