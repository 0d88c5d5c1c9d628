//go:build e2e

package timeslot_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"mentor-availability/internal/handler/dto/request"
	"mentor-availability/internal/handler/dto/response"
	"mentor-availability/internal/usecase/commands"
	"mentor-availability/tests/common/authtest"
	"mentor-availability/tests/common/builder"
	"mentor-availability/tests/common/dbtest"
	"mentor-availability/tests/common/httptest"
	"mentor-availability/tests/common/testutil"
	"mentor-availability/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	timeslotsURL        = "/api/timeslots"
	timeslotURL         = "/api/timeslots/%s"
	sessionsURL         = "/api/sessions"
	sessionTimeslotsURL = "/api/sessions/%s/timeslots"
	availabilityURL     = "/api/availability"
	recentURL           = "/api/availability/recent"
	sessionDefaultsURL  = "/api/profile/session-defaults"
)

type TimeslotSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *TimeslotSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestTimeslotSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(TimeslotSuite))
}

func ptr[T any](v T) *T { return &v }

func (s *TimeslotSuite) newMentor(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	mentorID := dbtest.CreateMentorProfile(t, s.DB, ptr(80.0), "Cafe Central", "https://maps.example/cafe", ptr(uuid.New()))
	return mentorID, s.jwt.GenerateToken(t, mentorID)
}

func (s *TimeslotSuite) listTimeslots(t *testing.T, token string) []response.TimeslotResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, timeslotsURL, nil, token)
	var body response.Envelope[[]response.TimeslotResponse]
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
	return body.Data
}

func (s *TimeslotSuite) TestCreateTimeslots() {
	s.Run("Normal case: provisions a session from profile defaults and lists the slot", func() {
		t := s.T()
		mentorID, token := s.newMentor(t)

		req := request.CreateTimeslotsRequest{
			Timeslots: []request.TimeslotDraftRequest{builder.NewTimeslotBuilder().BuildDraftRequest()},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, timeslotsURL, req, token)

		var created response.Envelope[commands.CreateResult]
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.True(t, created.Data.SessionProvisioned)
		require.Len(t, created.Data.TimeslotIDs, 1)
		require.Equal(t, 1, dbtest.CountSessions(t, s.DB, mentorID))

		items := s.listTimeslots(t, token)
		require.Len(t, items, 1)
		got := items[0]
		want := response.TimeslotResponse{
			ID:             created.Data.TimeslotIDs[0],
			SessionID:      created.Data.SessionID,
			Status:         "AVAILABLE",
			StartInstant:   ptr(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)),
			EndInstant:     ptr(time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)),
			DateLabel:      "Wed, Jan 1",
			TimeRangeLabel: "10:00 AM - 11:00 AM",
			DurationLabel:  "60 min",
			LocationLabel:  "Cafe Central",
			PriceLabel:     "$80",
			Session: response.SessionSummaryResponse{
				ID:           created.Data.SessionID,
				LocationName: "Cafe Central",
				Price:        ptr(80.0),
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("timeslot mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: attaches to an existing session without provisioning", func() {
		t := s.T()
		mentorID, token := s.newMentor(t)
		sessionID := dbtest.CreateSession(t, s.DB, mentorID, "Library", ptr(45.0))

		req := request.CreateTimeslotsRequest{
			SessionID: &sessionID,
			Timeslots: []request.TimeslotDraftRequest{
				builder.NewTimeslotBuilder().BuildDraftRequest(),
				builder.NewTimeslotBuilder().With(func(b *builder.TimeslotBuilder) {
					b.Start = ptr(time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC))
					b.End = ptr(time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC))
				}).BuildDraftRequest(),
			},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, timeslotsURL, req, token)

		var created response.Envelope[commands.CreateResult]
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.False(t, created.Data.SessionProvisioned)
		require.Equal(t, sessionID, created.Data.SessionID)
		require.Equal(t, 2, dbtest.CountTimeslots(t, s.DB, sessionID))
		require.Equal(t, 1, dbtest.CountSessions(t, s.DB, mentorID))
	})

	s.Run("Error case: inverted window is rejected before any session is created", func() {
		t := s.T()
		mentorID, token := s.newMentor(t)

		draft := builder.NewTimeslotBuilder().With(func(b *builder.TimeslotBuilder) {
			b.Start = ptr(time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC))
			b.End = ptr(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
		}).BuildDraftRequest()
		body := testutil.DraftsBody(testutil.DtoMap(t, draft))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, timeslotsURL, body, token)

		issues := httptest.AssertRejectedDrafts(t, w, 1)
		require.Contains(t, issues[0], "draft #0")
		require.Equal(t, 0, dbtest.CountSessions(t, s.DB, mentorID))
	})

	s.Run("Error case: missing end time is reported per draft", func() {
		t := s.T()
		_, token := s.newMentor(t)

		draft := builder.NewTimeslotBuilder().BuildDraftRequest()
		body := testutil.DraftsBody(
			testutil.DtoMap(t, draft),
			testutil.DtoMap(t, draft, testutil.Field("end_time", nil)),
		)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, timeslotsURL, body, token)

		issues := httptest.AssertRejectedDrafts(t, w, 1)
		require.Contains(t, issues[0], "draft #1")
		httptest.AssertRequestID(t, w)
	})

	s.Run("Error case: no profile and no session", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New())

		req := request.CreateTimeslotsRequest{
			Timeslots: []request.TimeslotDraftRequest{builder.NewTimeslotBuilder().BuildDraftRequest()},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, timeslotsURL, req, token)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("Error case: another mentor's session is not found", func() {
		t := s.T()
		otherID, _ := s.newMentor(t)
		foreign := dbtest.CreateSession(t, s.DB, otherID, "Elsewhere", nil)
		_, token := s.newMentor(t)

		req := request.AddTimeslotsRequest{
			Timeslots: []request.TimeslotDraftRequest{builder.NewTimeslotBuilder().BuildDraftRequest()},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(sessionTimeslotsURL, foreign), req, token)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
		require.Equal(t, 0, dbtest.CountTimeslots(t, s.DB, foreign))
	})

	s.Run("Error case: missing token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timeslotsURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("Error case: expired token", func() {
		t := s.T()
		token := s.jwt.CreateExpiredToken(t, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timeslotsURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})
}

func (s *TimeslotSuite) TestBookedGuard() {
	s.Run("Booking record marks the slot booked and blocks update and delete", func() {
		t := s.T()
		mentorID, token := s.newMentor(t)
		sessionID := dbtest.CreateSession(t, s.DB, mentorID, "Cafe Central", ptr(80.0))
		slotID := dbtest.CreateTimeslot(t, s.DB, sessionID,
			time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC))
		bookingID := dbtest.CreateBooking(t, s.DB, slotID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(timeslotURL, slotID), nil, token)
		var got response.Envelope[response.TimeslotResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "BOOKED", got.Data.Status)
		require.True(t, got.Data.IsBooked)
		require.NotNil(t, got.Data.BookingRef)
		require.Equal(t, bookingID.String(), *got.Data.BookingRef)

		update := builder.NewTimeslotBuilder().With(func(b *builder.TimeslotBuilder) {
			b.Start = ptr(time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC))
			b.End = ptr(time.Date(2025, 1, 3, 11, 0, 0, 0, time.UTC))
		}).BuildDraftRequest()
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(timeslotURL, slotID), update, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(timeslotURL, slotID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		require.Equal(t, 1, dbtest.CountTimeslots(t, s.DB, sessionID))
	})

	s.Run("Available slot can be updated and deleted", func() {
		t := s.T()
		mentorID, token := s.newMentor(t)
		sessionID := dbtest.CreateSession(t, s.DB, mentorID, "Cafe Central", ptr(80.0))
		slotID := dbtest.CreateTimeslot(t, s.DB, sessionID,
			time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC))

		update := builder.NewTimeslotBuilder().With(func(b *builder.TimeslotBuilder) {
			b.Start = ptr(time.Date(2025, 1, 1, 14, 0, 0, 0, time.UTC))
			b.End = ptr(time.Date(2025, 1, 1, 15, 30, 0, 0, time.UTC))
		}).BuildDraftRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(timeslotURL, slotID), update, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		items := s.listTimeslots(t, token)
		require.Len(t, items, 1)
		require.Equal(t, "90 min", items[0].DurationLabel)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(timeslotURL, slotID), nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
		require.Equal(t, 0, dbtest.CountTimeslots(t, s.DB, sessionID))
	})
}

func (s *TimeslotSuite) TestAvailability() {
	s.Run("Legacy rows are normalized and the offer view hides booked slots", func() {
		t := s.T()
		mentorID, token := s.newMentor(t)
		cheap := dbtest.CreateSession(t, s.DB, mentorID, "Library", ptr(40.0))
		dear := dbtest.CreateSession(t, s.DB, mentorID, "Cafe Central", ptr(120.0))

		legacy := dbtest.CreateLegacyTimeslot(t, s.DB, dear, "2025-01-05T09:00:00Z", "2025-01-05T10:00:00Z")
		booked := dbtest.CreateTimeslot(t, s.DB, cheap,
			time.Date(2025, 1, 4, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 4, 10, 0, 0, 0, time.UTC))
		dbtest.MarkBooked(t, s.DB, booked)
		open := dbtest.CreateTimeslot(t, s.DB, cheap,
			time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 6, 9, 45, 0, 0, time.UTC))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL+"?view=manage&sort=Date", nil, token)
		var manage response.Envelope[[]response.TimeslotResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &manage)
		require.Equal(t, []uuid.UUID{booked, legacy, open}, ids(manage.Data))
		require.Equal(t, "Sun, Jan 5", manage.Data[1].DateLabel)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL+"?view=offer&sort=Price", nil, token)
		var offer response.Envelope[[]response.TimeslotResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &offer)
		require.Equal(t, []uuid.UUID{open, legacy}, ids(offer.Data))
	})

	s.Run("Unknown sort key is rejected", func() {
		t := s.T()
		_, token := s.newMentor(t)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL+"?sort=Rating", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid sort key")
	})

	s.Run("Recent returns the latest start first", func() {
		t := s.T()
		mentorID, token := s.newMentor(t)
		sessionID := dbtest.CreateSession(t, s.DB, mentorID, "Cafe Central", nil)
		dbtest.CreateTimeslot(t, s.DB, sessionID,
			time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
		latest := dbtest.CreateTimeslot(t, s.DB, sessionID,
			time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, recentURL+"?limit=1", nil, token)
		var recent response.Envelope[[]response.TimeslotResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &recent)
		require.Len(t, recent.Data, 1)
		require.Equal(t, latest, recent.Data[0].ID)
		require.Equal(t, "$0", recent.Data[0].PriceLabel)
	})

	s.Run("Sessions are listed with their timeslots", func() {
		t := s.T()
		mentorID, token := s.newMentor(t)
		sessionID := dbtest.CreateSession(t, s.DB, mentorID, "Cafe Central", ptr(80.0))
		slotID := dbtest.CreateTimeslot(t, s.DB, sessionID,
			time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC))
		dbtest.CreateSession(t, s.DB, mentorID, "Library", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, sessionsURL, nil, token)
		var sessions response.Envelope[[]response.SessionResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sessions)
		require.Len(t, sessions.Data, 2)
		require.Equal(t, sessionID, sessions.Data[0].ID)
		require.Equal(t, []uuid.UUID{slotID}, ids(sessions.Data[0].Timeslots))
		require.Empty(t, sessions.Data[1].Timeslots)
	})

	s.Run("Session defaults are served and stay stable across cached reads", func() {
		t := s.T()
		positionID := uuid.New()
		mentorID := dbtest.CreateMentorProfile(t, s.DB, ptr(95.5), "Studio", "https://maps.example/studio", &positionID)
		token := s.jwt.GenerateToken(t, mentorID)

		want := response.SessionDefaultsResponse{
			DefaultRate:          ptr(95.5),
			DefaultLocation:      "Studio",
			LocationMapURL:       "https://maps.example/studio",
			RegisteredPositionID: positionID,
		}
		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, sessionDefaultsURL, nil, token)
			var got response.Envelope[response.SessionDefaultsResponse]
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
			if diff := cmp.Diff(want, got.Data); diff != "" {
				t.Errorf("defaults mismatch (-want +got):\n%s", diff)
			}
		}
	})
}

func ids(items []response.TimeslotResponse) []uuid.UUID {
	out := make([]uuid.UUID, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
