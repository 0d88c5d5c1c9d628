//go:build unit

package middleware_test

import (
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"mentor-availability/internal/handler/httperr"
	"mentor-availability/internal/handler/middleware"
	"mentor-availability/internal/pkg/clock"
	"mentor-availability/internal/pkg/config"
	"mentor-availability/internal/pkg/errs"
	"mentor-availability/internal/pkg/jwt"
	"mentor-availability/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewAuthMiddleware(svc).RequireAuth())
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := middleware.GetMentorID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"mentor_id": id})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	router := newAuthRouter(svc)
	mentorID := uuid.New()

	valid, err := svc.GenerateToken(mentorID)
	require.NoError(t, err)
	foreign, err := jwt.NewService("other-secret", time.Hour).GenerateToken(mentorID)
	require.NoError(t, err)

	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantMsg    string
	}{
		{name: "valid token", token: valid, wantStatus: http.StatusOK},
		{name: "missing token", token: "", wantStatus: http.StatusUnauthorized, wantMsg: "Access token required"},
		{name: "wrong signing key", token: foreign, wantStatus: http.StatusUnauthorized, wantMsg: "Invalid or expired token"},
		{name: "garbage", token: "not-a-jwt", wantStatus: http.StatusUnauthorized, wantMsg: "Invalid or expired token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, tt.token)
			if tt.wantStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, w, tt.wantStatus, tt.wantMsg)
				return
			}
			var body struct {
				MentorID uuid.UUID `json:"mentor_id"`
			}
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
			assert.Equal(t, mentorID, body.MentorID)
		})
	}
}

func TestRequireAuth_NonBearerScheme(t *testing.T) {
	router := newAuthRouter(jwt.NewService("test-secret", time.Hour))

	req := nethttptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.LoggingMiddleware(slog.New(slog.DiscardHandler), config.LogConfig{TimeZone: "UTC"}))
	r.Use(middleware.ErrorHandler())
	r.GET("/conflict", func(c *gin.Context) {
		httperr.AbortWithFailure(c, errs.ErrTimeslotBooked, "booked")
	})
	r.GET("/panic", func(_ *gin.Context) {
		panic("boom")
	})
	r.GET("/bare", func(c *gin.Context) {
		c.AbortWithStatus(http.StatusTeapot)
	})

	t.Run("public failure keeps its status and message", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/conflict", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "booked")
		httptest.AssertRequestID(t, w)
	})

	t.Run("panic becomes a 500", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("bare abort keeps its status", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/bare", nil, "")
		assert.Equal(t, http.StatusTeapot, w.Code)
	})
}

func TestCORSExposesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:3000"},
		AllowMethods:  []string{"GET"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := nethttptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	// header names come back canonicalized
	exposed := strings.ToLower(w.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, strings.ToLower(middleware.RequestIDHeader))
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	cfg.RateLimit = config.RateLimitConfig{PerMinute: 1, Burst: 2}
	limiter := middleware.NewRateLimiter(cfg, clock.NewFixedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, limiter)

	first, second := uuid.New(), uuid.New()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		id := first
		if c.GetHeader("X-Mentor") == "second" {
			id = second
		}
		middleware.SetMentorID(c, id)
	}, limiter.PerMentor())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	call := func(who string) int {
		req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Mentor", who)
		w := nethttptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call("first"))
	assert.Equal(t, http.StatusNoContent, call("first"))
	assert.Equal(t, http.StatusTooManyRequests, call("first"))
	// buckets are per mentor
	assert.Equal(t, http.StatusNoContent, call("second"))
}

func TestRateLimiter_Disabled(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.RateLimit.PerMinute = 0
	limiter := middleware.NewRateLimiter(cfg, clock.NewRealClock())
	assert.Nil(t, limiter)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limiter.PerMentor())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for range 5 {
		w := nethttptest.NewRecorder()
		r.ServeHTTP(w, nethttptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}
