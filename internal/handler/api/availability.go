package api

import (
	"net/http"
	"strconv"

	reqdto "mentor-availability/internal/handler/dto/request"
	resdto "mentor-availability/internal/handler/dto/response"
	"mentor-availability/internal/handler/httperr"
	"mentor-availability/internal/pkg/errs"
	"mentor-availability/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const defaultRecentLimit = 5

type AvailabilityHandler struct {
	q queries.TimeslotQueries
}

func NewAvailabilityHandler(q queries.TimeslotQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Aggregated availability
// @Description Every timeslot across the mentor's sessions, filtered by view and sorted by key
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param view query string false "manage (default) or offer"
// @Param sort query string false "Date (default), Time, Location or Price"
// @Param limit query int false "Max items, 0 for all"
// @Success 200 {object} resdto.Envelope[[]resdto.TimeslotResponse]
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) Aggregate(c *gin.Context) {
	mentorID, ok := mentorFrom(c)
	if !ok {
		return
	}
	var req reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	view, ok := queries.ParseView(req.View)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Newf("unknown view %q", req.View), "Invalid view", nil)
		return
	}
	key, ok := queries.ParseSortKey(req.Sort)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Newf("unknown sort key %q", req.Sort), "Invalid sort key", nil)
		return
	}

	res := h.q.Availability(c.Request.Context(), mentorID, view, key)
	writeMapped(c, http.StatusOK, res, func(items []queries.DisplayTimeslot) ([]resdto.TimeslotResponse, error) {
		return resdto.FromDisplayTimeslots(queries.Take(items, req.Limit))
	})
}

// @Summary Recently added timeslots
// @Description Newest timeslots first, for the sidebar
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 5)"
// @Success 200 {object} resdto.Envelope[[]resdto.TimeslotResponse]
// @Router /api/availability/recent [get]
func (h *AvailabilityHandler) Recent(c *gin.Context) {
	mentorID, ok := mentorFrom(c)
	if !ok {
		return
	}
	limit := defaultRecentLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil && iv > 0 {
			limit = iv
		}
	}
	writeMapped(c, http.StatusOK, h.q.RecentlyAdded(c.Request.Context(), mentorID, limit), resdto.FromDisplayTimeslots)
}

// @Summary Session defaults
// @Description Profile values a provisioned session starts from
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope[resdto.SessionDefaultsResponse]
// @Failure 404 {object} httperr.Response
// @Router /api/profile/session-defaults [get]
func (h *AvailabilityHandler) SessionDefaults(c *gin.Context) {
	mentorID, ok := mentorFrom(c)
	if !ok {
		return
	}
	writeResult(c, http.StatusOK, h.q.SessionDefaults(c.Request.Context(), mentorID), resdto.FromDefaults)
}
