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

type TimeslotHandler struct {
	cmds commands.TimeslotCommands
	q    queries.TimeslotQueries
}

func NewTimeslotHandler(cmds commands.TimeslotCommands, q queries.TimeslotQueries) *TimeslotHandler {
	return &TimeslotHandler{cmds: cmds, q: q}
}

// @Summary List timeslots
// @Description List every timeslot of the mentor with its session fields, earliest first
// @Tags timeslots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope[[]resdto.TimeslotResponse]
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/timeslots [get]
func (h *TimeslotHandler) List(c *gin.Context) {
	mentorID, ok := mentorFrom(c)
	if !ok {
		return
	}
	writeMapped(c, http.StatusOK, h.q.ListAll(c.Request.Context(), mentorID), resdto.FromDisplayTimeslots)
}

// @Summary Create timeslots
// @Description Validate a batch of drafts and attach it to a session, provisioning one from profile defaults when session_id is absent
// @Tags timeslots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTimeslotsRequest true "Drafts"
// @Success 201 {object} resdto.Envelope[commands.CreateResult]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/timeslots [post]
func (h *TimeslotHandler) Create(c *gin.Context) {
	mentorID, ok := mentorFrom(c)
	if !ok {
		return
	}
	var req reqdto.CreateTimeslotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res := h.cmds.Create(c.Request.Context(), mentorID, req.SessionID, reqdto.ToDrafts(req.Timeslots))
	writeResult(c, http.StatusCreated, res, func(r commands.CreateResult) commands.CreateResult { return r })
}

// @Summary Get timeslot
// @Tags timeslots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Timeslot ID"
// @Success 200 {object} resdto.Envelope[resdto.TimeslotResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/timeslots/{id} [get]
func (h *TimeslotHandler) Get(c *gin.Context) {
	mentorID, ok := mentorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	writeMapped(c, http.StatusOK, h.q.Get(c.Request.Context(), mentorID, id), func(v *queries.DisplayTimeslot) (resdto.TimeslotResponse, error) {
		return resdto.FromDisplayTimeslot(*v)
	})
}

// @Summary Update timeslot
// @Description Replace the window of a timeslot. Booked timeslots are refused.
// @Tags timeslots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Timeslot ID"
// @Param request body reqdto.TimeslotDraftRequest true "New window"
// @Success 200 {object} resdto.Envelope[resdto.TimeslotIDResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/timeslots/{id} [put]
func (h *TimeslotHandler) Update(c *gin.Context) {
	mentorID, ok := mentorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.TimeslotDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	writeResult(c, http.StatusOK, h.cmds.Update(c.Request.Context(), mentorID, id, req.ToDraft()), idResponse)
}

// @Summary Delete timeslot
// @Tags timeslots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Timeslot ID"
// @Success 200 {object} resdto.Envelope[resdto.TimeslotIDResponse]
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/timeslots/{id} [delete]
func (h *TimeslotHandler) Delete(c *gin.Context) {
	mentorID, ok := mentorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	writeResult(c, http.StatusOK, h.cmds.Delete(c.Request.Context(), mentorID, id), idResponse)
}

func idResponse(id uuid.UUID) resdto.TimeslotIDResponse {
	return resdto.TimeslotIDResponse{ID: id}
}
