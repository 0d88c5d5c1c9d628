//go:build unit || e2e

package builder

import (
	"time"

	"mentor-availability/internal/domain/session"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	ID             uuid.UUID
	MentorID       uuid.UUID
	PositionID     uuid.UUID
	Price          *float64
	LocationName   string
	LocationMapURL string
	CreatedAt      time.Time
}

func NewSessionBuilder() *SessionBuilder {
	price := 80.0
	return &SessionBuilder{
		ID:             uuid.New(),
		MentorID:       uuid.New(),
		PositionID:     uuid.New(),
		Price:          &price,
		LocationName:   "Cafe Central",
		LocationMapURL: "https://maps.example.com/cafe-central",
		CreatedAt:      time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) BuildDomain() *session.Session {
	return session.Reconstruct(b.ID, b.MentorID, b.PositionID, b.Price, b.LocationName, b.LocationMapURL, nil, b.CreatedAt)
}

func (b *SessionBuilder) BuildDefaults() session.Defaults {
	return session.Defaults{
		DefaultRate:          b.Price,
		DefaultLocation:      b.LocationName,
		LocationMapURL:       b.LocationMapURL,
		RegisteredPositionID: b.PositionID,
	}
}
