package response

import (
	"time"

	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/pkg/errs"
	"mentor-availability/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Envelope is the success body of every availability endpoint.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

func OK[T any](data T, message string) Envelope[T] {
	return Envelope[T]{Success: true, Data: data, Message: message}
}

type SessionSummaryResponse struct {
	ID           uuid.UUID `json:"id"`
	LocationName string    `json:"location_name"`
	Price        *float64  `json:"price"`
}

type TimeslotResponse struct {
	ID             uuid.UUID              `json:"id"`
	SessionID      uuid.UUID              `json:"session_id"`
	Status         string                 `json:"status"`
	StartInstant   *time.Time             `json:"start_time"`
	EndInstant     *time.Time             `json:"end_time"`
	IsBooked       bool                   `json:"is_booked"`
	BookingRef     *string                `json:"booking_id" copier:"-"`
	DateLabel      string                 `json:"date_label"`
	TimeRangeLabel string                 `json:"time_range_label"`
	DurationLabel  string                 `json:"duration_label"`
	LocationLabel  string                 `json:"location_label"`
	PriceLabel     string                 `json:"price_label"`
	Session        SessionSummaryResponse `json:"session" copier:"-"`
}

type SessionResponse struct {
	ID                uuid.UUID          `json:"id"`
	PositionID        uuid.UUID          `json:"position_id"`
	Price             *float64           `json:"price"`
	LocationName      string             `json:"location_name"`
	LocationMapURL    string             `json:"location_map_url"`
	AgendaDocumentRef *string            `json:"agenda_document_ref"`
	CreatedAt         time.Time          `json:"created_at"`
	Timeslots         []TimeslotResponse `json:"timeslots" copier:"-"`
}

type SessionDefaultsResponse struct {
	DefaultRate          *float64  `json:"default_rate"`
	DefaultLocation      string    `json:"default_location"`
	LocationMapURL       string    `json:"location_map_url"`
	RegisteredPositionID uuid.UUID `json:"registered_position_id"`
}

func FromDefaults(d session.Defaults) SessionDefaultsResponse {
	return SessionDefaultsResponse(d)
}

type CreatedSessionResponse struct {
	ID uuid.UUID `json:"id"`
}

type TimeslotIDResponse struct {
	ID uuid.UUID `json:"id"`
}

var copyOpt = copier.Option{DeepCopy: true}

func FromDisplayTimeslot(v queries.DisplayTimeslot) (TimeslotResponse, error) {
	var out TimeslotResponse
	if err := copier.CopyWithOption(&out, &v, copyOpt); err != nil {
		return TimeslotResponse{}, errs.Wrap(err, "map timeslot")
	}
	out.Status = v.Status.String()
	out.Session = SessionSummaryResponse(v.Session)
	if v.BookingRef != nil {
		ref := v.BookingRef.String()
		out.BookingRef = &ref
	}
	return out, nil
}

func FromDisplayTimeslots(items []queries.DisplayTimeslot) ([]TimeslotResponse, error) {
	out := make([]TimeslotResponse, len(items))
	for i, it := range items {
		mapped, err := FromDisplayTimeslot(it)
		if err != nil {
			return nil, err
		}
		out[i] = mapped
	}
	return out, nil
}

func FromSessionViews(items []queries.SessionView) ([]SessionResponse, error) {
	out := make([]SessionResponse, len(items))
	for i, it := range items {
		if err := copier.CopyWithOption(&out[i], &it, copyOpt); err != nil {
			return nil, errs.Wrap(err, "map session")
		}
		slots, err := FromDisplayTimeslots(it.Timeslots)
		if err != nil {
			return nil, err
		}
		out[i].Timeslots = slots
	}
	return out, nil
}
