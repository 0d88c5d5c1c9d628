package session

import (
	"time"

	"mentor-availability/internal/pkg/clock"

	"github.com/google/uuid"
)

type Session struct {
	id                uuid.UUID
	mentorID          uuid.UUID
	positionID        uuid.UUID
	price             *float64
	locationName      string
	locationMapURL    string
	agendaDocumentRef *string
	createdAt         time.Time
}

// Summary is the owner annotation carried next to each timeslot for display.
type Summary struct {
	ID           uuid.UUID
	LocationName string
	Price        *float64
}

// Provision builds a new session from the mentor's profile defaults.
func Provision(mentorID uuid.UUID, d Defaults, clk clock.Clock) (*Session, error) {
	if mentorID == uuid.Nil {
		return nil, ErrMissingMentor
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	var price *float64
	if d.DefaultRate != nil {
		p := *d.DefaultRate
		price = &p
	}
	return &Session{
		id:             uuid.New(),
		mentorID:       mentorID,
		positionID:     d.RegisteredPositionID,
		price:          price,
		locationName:   d.DefaultLocation,
		locationMapURL: d.LocationMapURL,
		createdAt:      clk.Now(),
	}, nil
}

func Reconstruct(id, mentorID, positionID uuid.UUID, price *float64, locationName, locationMapURL string, agendaDocumentRef *string, createdAt time.Time) *Session {
	return &Session{
		id:                id,
		mentorID:          mentorID,
		positionID:        positionID,
		price:             price,
		locationName:      locationName,
		locationMapURL:    locationMapURL,
		agendaDocumentRef: agendaDocumentRef,
		createdAt:         createdAt,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) MentorID() uuid.UUID {
	return s.mentorID
}

func (s *Session) PositionID() uuid.UUID {
	return s.positionID
}

func (s *Session) Price() *float64 {
	return s.price
}

func (s *Session) LocationName() string {
	return s.locationName
}

func (s *Session) LocationMapURL() string {
	return s.locationMapURL
}

func (s *Session) AgendaDocumentRef() *string {
	return s.agendaDocumentRef
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) Summary() Summary {
	return Summary{ID: s.id, LocationName: s.locationName, Price: s.price}
}
