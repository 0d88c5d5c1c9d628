package api

import (
	"net/http"

	reqdto "mentor-availability/internal/handler/dto/request"
	resdto "mentor-availability/internal/handler/dto/response"
	"mentor-availability/internal/handler/httperr"
	"mentor-availability/internal/usecase/commands"
	"mentor-availability/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	cmds commands.TimeslotCommands
	q    queries.TimeslotQueries
}

func NewSessionHandler(cmds commands.TimeslotCommands, q queries.TimeslotQueries) *SessionHandler {
	return &SessionHandler{cmds: cmds, q: q}
}

// @Summary List sessions
// @Description Sessions of the mentor with their timeslots
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope[[]resdto.SessionResponse]
// @Failure 502 {object} httperr.Response
// @Router /api/sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	mentorID, ok := mentorFrom(c)
	if !ok {
		return
	}
	writeMapped(c, http.StatusOK, h.q.Sessions(c.Request.Context(), mentorID), resdto.FromSessionViews)
}

// @Summary Provision session
// @Description Create a new session from the mentor's profile defaults. Not deduplicated.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.Envelope[resdto.CreatedSessionResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	mentorID, ok := mentorFrom(c)
	if !ok {
		return
	}
	writeResult(c, http.StatusCreated, h.cmds.EnsureSession(c.Request.Context(), mentorID, nil), func(id uuid.UUID) resdto.CreatedSessionResponse {
		return resdto.CreatedSessionResponse{ID: id}
	})
}

// @Summary List session timeslots
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.Envelope[[]resdto.TimeslotResponse]
// @Failure 404 {object} httperr.Response
// @Router /api/sessions/{id}/timeslots [get]
func (h *SessionHandler) ListTimeslots(c *gin.Context) {
	mentorID, ok := mentorFrom(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	writeMapped(c, http.StatusOK, h.q.ListForSession(c.Request.Context(), mentorID, sessionID), resdto.FromDisplayTimeslots)
}

// @Summary Attach timeslots
// @Description Validate a batch of drafts and attach every one to the session
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.AddTimeslotsRequest true "Drafts"
// @Success 201 {object} resdto.Envelope[commands.CreateResult]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/sessions/{id}/timeslots [post]
func (h *SessionHandler) AddTimeslots(c *gin.Context) {
	mentorID, ok := mentorFrom(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AddTimeslotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res := h.cmds.CreateTimeslots(c.Request.Context(), mentorID, sessionID, reqdto.ToDrafts(req.Timeslots))
	writeResult(c, http.StatusCreated, res, func(ids []uuid.UUID) commands.CreateResult {
		return commands.CreateResult{SessionID: sessionID, TimeslotIDs: ids}
	})
}
