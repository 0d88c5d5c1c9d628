//go:build unit || e2e

package builder

import (
	"time"

	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/domain/timeslot"
	reqdto "mentor-availability/internal/handler/dto/request"
	"mentor-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

type TimeslotBuilder struct {
	ID           uuid.UUID
	SessionID    uuid.UUID
	Start        *time.Time
	End          *time.Time
	Signals      timeslot.Signals
	LocationName string
	Price        *float64
}

func NewTimeslotBuilder() *TimeslotBuilder {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	price := 80.0
	return &TimeslotBuilder{
		ID:           uuid.New(),
		SessionID:    uuid.New(),
		Start:        &start,
		End:          &end,
		LocationName: "Cafe Central",
		Price:        &price,
	}
}

func (b *TimeslotBuilder) With(mutate func(*TimeslotBuilder)) *TimeslotBuilder {
	mutate(b)
	return b
}

func (b *TimeslotBuilder) Booked() *TimeslotBuilder {
	booked := true
	b.Signals.IsBooked = &booked
	return b
}

func (b *TimeslotBuilder) BuildDomain() *timeslot.Timeslot {
	return timeslot.Reconstruct(b.ID, b.SessionID, timeslot.Times{Start: b.Start, End: b.End}, b.Signals)
}

func (b *TimeslotBuilder) BuildSummary() session.Summary {
	return session.Summary{ID: b.SessionID, LocationName: b.LocationName, Price: b.Price}
}

func (b *TimeslotBuilder) BuildAnnotated() shared.AnnotatedTimeslot {
	return shared.AnnotatedTimeslot{Timeslot: b.BuildDomain(), Owner: b.BuildSummary()}
}

func (b *TimeslotBuilder) BuildDraft() timeslot.Draft {
	var d timeslot.Draft
	if b.Start != nil {
		d.Start = *b.Start
	}
	if b.End != nil {
		d.End = *b.End
	}
	return d
}

func (b *TimeslotBuilder) BuildDraftRequest() reqdto.TimeslotDraftRequest {
	var r reqdto.TimeslotDraftRequest
	if b.Start != nil {
		r.StartTime = b.Start.Format(time.RFC3339)
	}
	if b.End != nil {
		r.EndTime = b.End.Format(time.RFC3339)
	}
	return r
}
