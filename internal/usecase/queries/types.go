package queries

import (
	"strings"
	"time"

	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/domain/timeslot"

	"github.com/google/uuid"
)

// DisplayTimeslot is the read projection of a timeslot. Recomputed on every read.
type DisplayTimeslot struct {
	ID             uuid.UUID            `json:"id"`
	SessionID      uuid.UUID            `json:"session_id"`
	Status         timeslot.Status      `json:"status"`
	DateLabel      string               `json:"date_label"`
	DurationLabel  string               `json:"duration_label"`
	TimeRangeLabel string               `json:"time_range_label"`
	LocationLabel  string               `json:"location_label"`
	PriceLabel     string               `json:"price_label"`
	StartInstant   *time.Time           `json:"start_time"`
	EndInstant     *time.Time           `json:"end_time"`
	IsBooked       bool                 `json:"is_booked"`
	BookingRef     *timeslot.BookingRef `json:"booking_id"`
	Session        session.Summary      `json:"-"`
}

// SessionView is a session with its formatted timeslots.
type SessionView struct {
	ID                uuid.UUID
	PositionID        uuid.UUID
	Price             *float64
	LocationName      string
	LocationMapURL    string
	AgendaDocumentRef *string
	CreatedAt         time.Time
	Timeslots         []DisplayTimeslot
}

// View selects which statuses an aggregate includes.
type View string

const (
	// every status, for the management screen
	ViewManage View = "manage"
	// only what can still be offered
	ViewOffer View = "offer"
)

func ParseView(s string) (View, bool) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case "", ViewManage:
		return ViewManage, true
	case ViewOffer:
		return ViewOffer, true
	default:
		return "", false
	}
}

type SortKey string

const (
	SortByDate     SortKey = "Date"
	SortByTime     SortKey = "Time"
	SortByLocation SortKey = "Location"
	SortByPrice    SortKey = "Price"
)

// ParseSortKey is case-insensitive and defaults to Date.
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "date":
		return SortByDate, true
	case "time":
		return SortByTime, true
	case "location":
		return SortByLocation, true
	case "price":
		return SortByPrice, true
	default:
		return "", false
	}
}
