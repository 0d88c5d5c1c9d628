package shared

import (
	"context"

	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/domain/timeslot"

	"github.com/google/uuid"
)

// AnnotatedTimeslot pairs a timeslot with the owner fields needed to display it.
type AnnotatedTimeslot struct {
	Timeslot *timeslot.Timeslot
	Owner    session.Summary
}

type SessionTimeslots struct {
	Session   *session.Session
	Timeslots []*timeslot.Timeslot
}

// AvailabilityStore is the remote store the façade reads and writes through.
// Implementations scope every call to mentorID.
type AvailabilityStore interface {
	ListTimeslots(ctx context.Context, mentorID uuid.UUID) ([]AnnotatedTimeslot, error)
	ListSessionTimeslots(ctx context.Context, mentorID, sessionID uuid.UUID) ([]AnnotatedTimeslot, error)
	ListSessions(ctx context.Context, mentorID uuid.UUID) ([]SessionTimeslots, error)
	GetTimeslot(ctx context.Context, mentorID, timeslotID uuid.UUID) (AnnotatedTimeslot, error)

	CreateSession(ctx context.Context, s *session.Session) (*session.Session, error)
	CreateTimeslots(ctx context.Context, mentorID, sessionID uuid.UUID, windows []timeslot.Window) ([]uuid.UUID, error)
	UpdateTimeslot(ctx context.Context, mentorID, timeslotID uuid.UUID, w timeslot.Window) error
	DeleteTimeslot(ctx context.Context, mentorID, timeslotID uuid.UUID) error
}

// DefaultsProvider supplies the profile values used to auto-provision a session.
type DefaultsProvider interface {
	Defaults(ctx context.Context, mentorID uuid.UUID) (session.Defaults, error)
}
