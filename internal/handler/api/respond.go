package api

import (
	"net/http"

	resdto "mentor-availability/internal/handler/dto/response"
	"mentor-availability/internal/handler/httperr"
	"mentor-availability/internal/handler/middleware"
	"mentor-availability/internal/pkg/errs"
	"mentor-availability/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// writeResult renders a successful result in the envelope, or aborts with the
// failure's mapped status.
func writeResult[T, R any](c *gin.Context, status int, res shared.Result[T], present func(T) R) {
	writeMapped(c, status, res, func(v T) (R, error) { return present(v), nil })
}

// writeMapped is writeResult for presenters that can fail.
func writeMapped[T, R any](c *gin.Context, status int, res shared.Result[T], present func(T) (R, error)) {
	if !res.Success {
		httperr.AbortWithFailure(c, res.Err, res.Message)
		return
	}
	body, err := present(res.Data)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render response", nil)
		return
	}
	c.JSON(status, resdto.OK(body, res.Message))
}

func mentorFrom(c *gin.Context) (uuid.UUID, bool) {
	mentorID, ok := middleware.GetMentorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing mentor identity"), "Unauthorized", nil)
		return uuid.Nil, false
	}
	return mentorID, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
