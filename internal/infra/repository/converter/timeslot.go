package converter

import (
	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/domain/timeslot"
	"mentor-availability/internal/pkg/pgconv"
	"mentor-availability/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// TimeslotRow is one row of the annotated timeslot select.
type TimeslotRow struct {
	ID              uuid.UUID
	SessionID       uuid.UUID
	StartTime       pgtype.Timestamptz
	EndTime         pgtype.Timestamptz
	StartDate       pgtype.Text // legacy text column
	EndDate         pgtype.Text // legacy text column
	IsBooked        pgtype.Bool
	BookingID       pgtype.UUID
	NestedBookingID pgtype.UUID
	LocationName    string
	Price           pgtype.Numeric
}

// ScanTargets lists destinations in timeslotColumns order.
func (r *TimeslotRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.SessionID,
		&r.StartTime, &r.EndTime, &r.StartDate, &r.EndDate,
		&r.IsBooked, &r.BookingID, &r.NestedBookingID,
		&r.LocationName, &r.Price,
	}
}

func TimeslotFromRow(r TimeslotRow) *timeslot.Timeslot {
	times := timeslot.Normalize(timeslot.RawTimes{
		StartTime: timeslot.RawTimePtr(pgconv.TimePtrFromPgtype(r.StartTime)),
		EndTime:   timeslot.RawTimePtr(pgconv.TimePtrFromPgtype(r.EndTime)),
		StartDate: rawText(r.StartDate),
		EndDate:   rawText(r.EndDate),
	})

	signals := timeslot.Signals{
		IsBooked:   pgconv.BoolPtrFromPgtype(r.IsBooked),
		BookingRef: timeslot.BookingRefFromUUID(pgconv.UUIDPtrFromPgtype(r.BookingID)),
	}
	if nested := timeslot.BookingRefFromUUID(pgconv.UUIDPtrFromPgtype(r.NestedBookingID)); nested != nil {
		signals.Booking = &timeslot.Booking{ID: nested}
	}

	return timeslot.Reconstruct(r.ID, r.SessionID, times, signals)
}

func AnnotatedFromRow(r TimeslotRow) shared.AnnotatedTimeslot {
	// a malformed price is shown as unavailable rather than failing the list
	price, _ := pgconv.Float64PtrFromNumeric(r.Price)
	return shared.AnnotatedTimeslot{
		Timeslot: TimeslotFromRow(r),
		Owner: session.Summary{
			ID:           r.SessionID,
			LocationName: r.LocationName,
			Price:        price,
		},
	}
}

func rawText(pt pgtype.Text) timeslot.RawInstant {
	if s := pgconv.StringPtrFromPgtype(pt); s != nil {
		return timeslot.RawText(*s)
	}
	return timeslot.RawInstant{}
}
