package request

import (
	"mentor-availability/internal/domain/timeslot"

	"github.com/google/uuid"
)

// TimeslotDraftRequest carries one proposed window. Times are strings so that
// every accepted instant format reaches the validator; missing or unparseable
// values are reported per draft rather than as a bind error.
type TimeslotDraftRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r TimeslotDraftRequest) ToDraft() timeslot.Draft {
	var d timeslot.Draft
	if t, ok := timeslot.ParseInstant(r.StartTime); ok {
		d.Start = t
	}
	if t, ok := timeslot.ParseInstant(r.EndTime); ok {
		d.End = t
	}
	return d
}

type CreateTimeslotsRequest struct {
	SessionID *uuid.UUID             `json:"session_id"`
	Timeslots []TimeslotDraftRequest `json:"timeslots"`
}

type AddTimeslotsRequest struct {
	Timeslots []TimeslotDraftRequest `json:"timeslots"`
}

func ToDrafts(reqs []TimeslotDraftRequest) []timeslot.Draft {
	drafts := make([]timeslot.Draft, len(reqs))
	for i, r := range reqs {
		drafts[i] = r.ToDraft()
	}
	return drafts
}

type AvailabilityQuery struct {
	View  string `form:"view"`
	Sort  string `form:"sort"`
	Limit int    `form:"limit" binding:"omitempty,min=0,max=500"`
}
