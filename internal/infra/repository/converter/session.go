package converter

import (
	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SessionRow struct {
	ID                uuid.UUID
	MentorID          uuid.UUID
	PositionID        uuid.UUID
	Price             pgtype.Numeric
	LocationName      string
	LocationMapURL    string
	AgendaDocumentRef pgtype.Text
	CreatedAt         pgtype.Timestamptz
}

func (r *SessionRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.MentorID, &r.PositionID, &r.Price,
		&r.LocationName, &r.LocationMapURL, &r.AgendaDocumentRef, &r.CreatedAt,
	}
}

func SessionFromRow(r SessionRow) *session.Session {
	price, _ := pgconv.Float64PtrFromNumeric(r.Price)
	return session.Reconstruct(
		r.ID,
		r.MentorID,
		r.PositionID,
		price,
		r.LocationName,
		r.LocationMapURL,
		pgconv.StringPtrFromPgtype(r.AgendaDocumentRef),
		r.CreatedAt.Time.UTC(),
	)
}

// SessionToInsertArgs follows insertSessionSQL placeholder order.
func SessionToInsertArgs(s *session.Session) []any {
	return []any{
		s.ID(),
		s.MentorID(),
		s.PositionID(),
		pgconv.NumericFromFloat64Ptr(s.Price()),
		s.LocationName(),
		s.LocationMapURL(),
		pgconv.StringPtrToPgtype(s.AgendaDocumentRef()),
		pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

type ProfileDefaultsRow struct {
	DefaultRate          pgtype.Numeric
	DefaultLocation      string
	LocationMapURL       string
	RegisteredPositionID pgtype.UUID
}

func DefaultsFromRow(r ProfileDefaultsRow) session.Defaults {
	rate, _ := pgconv.Float64PtrFromNumeric(r.DefaultRate)
	d := session.Defaults{
		DefaultRate:     rate,
		DefaultLocation: r.DefaultLocation,
		LocationMapURL:  r.LocationMapURL,
	}
	if id := pgconv.UUIDPtrFromPgtype(r.RegisteredPositionID); id != nil {
		d.RegisteredPositionID = *id
	}
	return d
}
