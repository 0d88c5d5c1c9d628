//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/domain/timeslot"
	"mentor-availability/internal/handler/api"
	resdto "mentor-availability/internal/handler/dto/response"
	"mentor-availability/internal/handler/middleware"
	"mentor-availability/internal/pkg/errs"
	"mentor-availability/internal/usecase/commands"
	"mentor-availability/internal/usecase/queries"
	"mentor-availability/internal/usecase/shared"
	"mentor-availability/tests/common/builder"
	"mentor-availability/tests/common/httptest"
	"mentor-availability/tests/common/testutil"
	commandsmock "mentor-availability/tests/mock/commands"
	queriesmock "mentor-availability/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimeslotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTimeslotCommands
	mockQueries  *queriesmock.MockTimeslotQueries
	mentorID     uuid.UUID
}

func (s *TimeslotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTimeslotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTimeslotQueries(s.mockCtrl)
	s.mentorID = uuid.New()

	timeslots := api.NewTimeslotHandler(s.mockCommands, s.mockQueries)
	sessions := api.NewSessionHandler(s.mockCommands, s.mockQueries)
	availability := api.NewAvailabilityHandler(s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetMentorID(c, s.mentorID)
		c.Next()
	}

	g := s.router.Group("/api", authMiddleware)
	g.GET("/timeslots", timeslots.List)
	g.POST("/timeslots", timeslots.Create)
	g.GET("/timeslots/:id", timeslots.Get)
	g.PUT("/timeslots/:id", timeslots.Update)
	g.DELETE("/timeslots/:id", timeslots.Delete)
	g.GET("/sessions", sessions.List)
	g.POST("/sessions", sessions.Create)
	g.POST("/sessions/:id/timeslots", sessions.AddTimeslots)
	g.GET("/availability", availability.Aggregate)
	g.GET("/availability/recent", availability.Recent)
	g.GET("/profile/session-defaults", availability.SessionDefaults)
}

func (s *TimeslotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTimeslotHandlerSuite(t *testing.T) {
	suite.Run(t, new(TimeslotHandlerTestSuite))
}

func displayOf(b *builder.TimeslotBuilder) queries.DisplayTimeslot {
	return queries.NewFormatter(time.UTC).Format(b.BuildDomain(), b.BuildSummary())
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *TimeslotHandlerTestSuite) TestCreate() {
	url := "/api/timeslots"
	draft := builder.NewTimeslotBuilder().BuildDraftRequest()
	reqBody := testutil.DraftsBody(testutil.DtoMap(s.T(), draft))

	s.Run("success: returns 201 with the provisioned session", func() {
		sessionID := uuid.New()
		ids := []uuid.UUID{uuid.New()}
		s.mockCommands.EXPECT().Create(gomock.Any(), s.mentorID, (*uuid.UUID)(nil), gomock.Len(1)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ *uuid.UUID, drafts []timeslot.Draft) shared.Result[commands.CreateResult] {
				s.Equal(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), drafts[0].Start)
				return shared.Ok(commands.CreateResult{SessionID: sessionID, SessionProvisioned: true, TimeslotIDs: ids}, "timeslots created")
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.Envelope[commands.CreateResult]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Success)
		s.Equal(sessionID, body.Data.SessionID)
		s.True(body.Data.SessionProvisioned)
		s.Equal(ids, body.Data.TimeslotIDs)
	})

	s.Run("error: 400 lists the offending drafts", func() {
		bad := []timeslot.Draft{{}}
		_, verr := timeslot.ValidateDrafts(bad)
		s.mockCommands.EXPECT().Create(gomock.Any(), s.mentorID, gomock.Any(), gomock.Any()).
			Return(shared.Fail(commands.CreateResult{TimeslotIDs: []uuid.UUID{}}, verr))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"timeslots": []any{map[string]any{"start_time": "", "end_time": "soon"}}}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "draft #0")
		s.Contains(rec.Body.String(), `"drafts"`)
	})

	s.Run("error: 400 on malformed json", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"timeslots": [`, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 502 when the store is unreachable", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.mentorID, gomock.Any(), gomock.Any()).
			Return(shared.Fail(commands.CreateResult{TimeslotIDs: []uuid.UUID{}}, errs.New("dial tcp: connection refused")))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "retry")
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *TimeslotHandlerTestSuite) TestGet() {
	b := builder.NewTimeslotBuilder()

	s.Run("success: returns labels and nested session", func() {
		view := displayOf(b)
		s.mockQueries.EXPECT().Get(gomock.Any(), s.mentorID, b.ID).Return(shared.Ok(&view, ""))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/timeslots/"+b.ID.String(), nil, "bearer-token")

		var body resdto.Envelope[map[string]any]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID.String(), body.Data["id"])
		s.Equal("AVAILABLE", body.Data["status"])
		s.Equal("Wed, Jan 1", body.Data["date_label"])
		s.Equal("10:00 AM - 11:00 AM", body.Data["time_range_label"])
		s.Equal("$80", body.Data["price_label"])
		s.Equal("2025-01-01T10:00:00Z", body.Data["start_time"])
		nested, ok := body.Data["session"].(map[string]any)
		s.Require().True(ok)
		s.Equal(b.SessionID.String(), nested["id"])
		s.Equal("Cafe Central", nested["location_name"])
	})

	s.Run("error: 404 for unknown timeslot", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.mentorID, b.ID).
			Return(shared.Fail[*queries.DisplayTimeslot](nil, errs.ErrTimeslotNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/timeslots/"+b.ID.String(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "timeslot not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/timeslots/not-a-uuid", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *TimeslotHandlerTestSuite) TestList() {
	items := []queries.DisplayTimeslot{displayOf(builder.NewTimeslotBuilder()), displayOf(builder.NewTimeslotBuilder().Booked())}
	s.mockQueries.EXPECT().ListAll(gomock.Any(), s.mentorID).Return(shared.Ok(items, ""))

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/timeslots", nil, "bearer-token")

	var body resdto.Envelope[[]resdto.TimeslotResponse]
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Data, 2)
	s.False(body.Data[0].IsBooked)
	s.True(body.Data[1].IsBooked)
	s.Equal("BOOKED", body.Data[1].Status)
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *TimeslotHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	reqBody := map[string]any{"start_time": "2025-01-05T14:00:00Z", "end_time": "2025-01-05T15:00:00Z"}

	s.Run("success: 200 with the preserved id", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.mentorID, id, timeslot.Draft{
			Start: time.Date(2025, 1, 5, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 1, 5, 15, 0, 0, 0, time.UTC),
		}).Return(shared.Ok(id, "timeslot updated"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/timeslots/"+id.String(), reqBody, "bearer-token")

		var body resdto.Envelope[resdto.TimeslotIDResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.Data.ID)
	})

	s.Run("error: 409 for a booked timeslot", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.mentorID, id, gomock.Any()).
			Return(shared.Fail(uuid.Nil, errs.ErrTimeslotBooked))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/timeslots/"+id.String(), reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "booked")
	})
}

func (s *TimeslotHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.mentorID, id).Return(shared.Ok(id, "timeslot deleted"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/timeslots/"+id.String(), nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.mentorID, id).Return(shared.Fail(uuid.Nil, errs.ErrTimeslotNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/timeslots/"+id.String(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// Sessions / Availability / Profile
// ================================================================================

func (s *TimeslotHandlerTestSuite) TestSessions() {
	s.Run("create provisions from defaults", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().EnsureSession(gomock.Any(), s.mentorID, (*uuid.UUID)(nil)).Return(shared.Ok(id, "session created from profile defaults"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/sessions", nil, "bearer-token")

		var body resdto.Envelope[resdto.CreatedSessionResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id, body.Data.ID)
	})

	s.Run("add timeslots to a session", func() {
		sessionID := uuid.New()
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		s.mockCommands.EXPECT().CreateTimeslots(gomock.Any(), s.mentorID, sessionID, gomock.Len(2)).Return(shared.Ok(ids, "timeslots created"))

		draft := builder.NewTimeslotBuilder().BuildDraftRequest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/sessions/"+sessionID.String()+"/timeslots",
			map[string]any{"timeslots": []any{draft, draft}}, "bearer-token")

		var body resdto.Envelope[commands.CreateResult]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(sessionID, body.Data.SessionID)
		s.Equal(ids, body.Data.TimeslotIDs)
	})

	s.Run("list", func() {
		sess := builder.NewSessionBuilder()
		views := []queries.SessionView{{
			ID:           sess.ID,
			PositionID:   sess.PositionID,
			Price:        sess.Price,
			LocationName: sess.LocationName,
			CreatedAt:    sess.CreatedAt,
			Timeslots:    []queries.DisplayTimeslot{displayOf(builder.NewTimeslotBuilder())},
		}}
		s.mockQueries.EXPECT().Sessions(gomock.Any(), s.mentorID).Return(shared.Ok(views, ""))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/sessions", nil, "bearer-token")

		var body resdto.Envelope[[]resdto.SessionResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Data, 1)
		s.Equal(sess.ID, body.Data[0].ID)
		s.Equal(sess.PositionID, body.Data[0].PositionID)
		s.Len(body.Data[0].Timeslots, 1)
	})
}

func (s *TimeslotHandlerTestSuite) TestAvailability() {
	s.Run("parses view and sort case-insensitively and limits", func() {
		items := []queries.DisplayTimeslot{
			displayOf(builder.NewTimeslotBuilder()),
			displayOf(builder.NewTimeslotBuilder()),
			displayOf(builder.NewTimeslotBuilder()),
		}
		s.mockQueries.EXPECT().Availability(gomock.Any(), s.mentorID, queries.ViewOffer, queries.SortByPrice).Return(shared.Ok(items, ""))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?view=offer&sort=price&limit=2", nil, "bearer-token")

		var body resdto.Envelope[[]resdto.TimeslotResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Data, 2)
	})

	s.Run("rejects an unknown sort key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?sort=rating", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid sort key")
	})

	s.Run("recent defaults to five", func() {
		s.mockQueries.EXPECT().RecentlyAdded(gomock.Any(), s.mentorID, 5).Return(shared.Ok([]queries.DisplayTimeslot{}, ""))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability/recent", nil, "bearer-token")

		var body resdto.Envelope[[]resdto.TimeslotResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body.Data)
		s.Empty(body.Data)
	})

	s.Run("session defaults", func() {
		defaults := builder.NewSessionBuilder().BuildDefaults()
		s.mockQueries.EXPECT().SessionDefaults(gomock.Any(), s.mentorID).Return(shared.Ok(defaults, ""))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/profile/session-defaults", nil, "bearer-token")

		var body resdto.Envelope[resdto.SessionDefaultsResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(defaults.RegisteredPositionID, body.Data.RegisteredPositionID)
		s.Equal(*defaults.DefaultRate, *body.Data.DefaultRate)
	})

	s.Run("missing profile is 404", func() {
		s.mockQueries.EXPECT().SessionDefaults(gomock.Any(), s.mentorID).Return(shared.Fail(session.Defaults{}, errs.ErrProfileNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/profile/session-defaults", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "mentor profile not found")
	})
}
