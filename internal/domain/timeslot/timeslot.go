package timeslot

import (
	"time"

	"github.com/google/uuid"
)

type Timeslot struct {
	id        uuid.UUID
	sessionID uuid.UUID
	times     Times
	signals   Signals
}

func Reconstruct(id, sessionID uuid.UUID, times Times, signals Signals) *Timeslot {
	return &Timeslot{
		id:        id,
		sessionID: sessionID,
		times:     times,
		signals:   signals,
	}
}

func (t *Timeslot) ID() uuid.UUID {
	return t.id
}

func (t *Timeslot) SessionID() uuid.UUID {
	return t.sessionID
}

func (t *Timeslot) Times() Times {
	return t.times
}

func (t *Timeslot) Start() *time.Time {
	return t.times.Start
}

func (t *Timeslot) End() *time.Time {
	return t.times.End
}

func (t *Timeslot) Signals() Signals {
	return t.signals
}

func (t *Timeslot) Status() Status {
	return Classify(t.signals)
}

func (t *Timeslot) IsBooked() bool {
	return t.Status() == StatusBooked
}

func (t *Timeslot) BookingRef() *BookingRef {
	return t.signals.EffectiveBookingRef()
}

func (t *Timeslot) DurationMinutes() int {
	return t.times.DurationMinutes()
}
