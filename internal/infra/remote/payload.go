package remote

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/domain/timeslot"
	"mentor-availability/internal/pkg/errs"
	"mentor-availability/internal/pkg/patch"
	"mentor-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

// fields is a decoded JSON object. Lookups accept several spellings of one key
// because the store has shipped snake_case and camelCase payloads.
type fields map[string]json.RawMessage

func (f fields) raw(keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		v, ok := f[k]
		if ok && !isNull(v) {
			return v, true
		}
	}
	return nil, false
}

func (f fields) present(keys ...string) bool {
	_, ok := f.raw(keys...)
	return ok
}

func (f fields) str(keys ...string) string {
	v, ok := f.raw(keys...)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}

func (f fields) strPtr(keys ...string) *string {
	if !f.present(keys...) {
		return nil
	}
	s := f.str(keys...)
	if s == "" {
		return nil
	}
	return &s
}

// id reads a UUID. Empty strings count as absent.
func (f fields) id(keys ...string) (uuid.UUID, error) {
	s := strings.TrimSpace(f.str(keys...))
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errs.Wrapf(err, "field %s", keys[0])
	}
	return id, nil
}

// ref reads an opaque reference from a string or a bare number. Anything else,
// including blank text, counts as absent.
func (f fields) ref(keys ...string) *timeslot.BookingRef {
	v, ok := f.raw(keys...)
	if !ok {
		return nil
	}
	return refOf(v)
}

func refOf(v json.RawMessage) *timeslot.BookingRef {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return timeslot.NewBookingRef(s)
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return timeslot.NewBookingRef(n.String())
	}
	return nil
}

// number reads a JSON number or a numeric string.
func (f fields) number(keys ...string) *float64 {
	v, ok := f.raw(keys...)
	if !ok {
		return nil
	}
	var n float64
	if err := json.Unmarshal(v, &n); err == nil {
		return &n
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(s), "$"), 64)
	if err != nil {
		return nil
	}
	return &n
}

// flag reads a bool, "true"/"false" or 0/1.
func (f fields) flag(keys ...string) *bool {
	v, ok := f.raw(keys...)
	if !ok {
		return nil
	}
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return &b
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return &parsed
		}
		return nil
	}
	var n float64
	if err := json.Unmarshal(v, &n); err == nil {
		b = n != 0
		return &b
	}
	return nil
}

func (f fields) instant(keys ...string) timeslot.RawInstant {
	v, ok := f.raw(keys...)
	if !ok {
		return timeslot.RawInstant{}
	}
	var r timeslot.RawInstant
	_ = json.Unmarshal(v, &r)
	return r
}

func (f fields) object(keys ...string) (fields, bool) {
	v, ok := f.raw(keys...)
	if !ok || !isObject(v) {
		return nil, false
	}
	var out fields
	if err := json.Unmarshal(v, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (f fields) list(keys ...string) ([]fields, error) {
	v, ok := f.raw(keys...)
	if !ok {
		return nil, nil
	}
	return decodeList(v)
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func isObject(v json.RawMessage) bool {
	t := bytes.TrimSpace(v)
	return len(t) > 0 && t[0] == '{'
}

func isArray(v json.RawMessage) bool {
	t := bytes.TrimSpace(v)
	return len(t) > 0 && t[0] == '['
}

func decodeObject(v json.RawMessage) (fields, error) {
	var f fields
	if err := json.Unmarshal(v, &f); err != nil {
		return nil, errs.Wrap(err, "decode object")
	}
	return f, nil
}

func decodeList(v json.RawMessage) ([]fields, error) {
	var items []fields
	if err := json.Unmarshal(v, &items); err != nil {
		return nil, errs.Wrap(err, "decode list")
	}
	return items, nil
}

// envelope is the {success, data, message} wrapper. Some endpoints answer with
// the bare payload instead.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// unwrap returns the payload of body, rejecting failure envelopes.
func unwrap(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if !isObject(trimmed) {
		return trimmed, nil
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, errs.Wrap(err, "decode envelope")
	}
	if env.Success == nil {
		return trimmed, nil
	}
	if !*env.Success {
		return nil, errs.Newf("store reported failure: %s", env.Message)
	}
	return env.Data, nil
}

// timeslotsFrom accepts a bare list or an object carrying a timeslots list.
func timeslotsFrom(payload json.RawMessage) ([]fields, error) {
	if len(payload) == 0 || isNull(payload) {
		return nil, nil
	}
	if isArray(payload) {
		return decodeList(payload)
	}
	obj, err := decodeObject(payload)
	if err != nil {
		return nil, err
	}
	return obj.list("timeslots", "timeSlots", "items")
}

func rawTimes(f fields) timeslot.RawTimes {
	return timeslot.RawTimes{
		StartTime: f.instant("start_time", "startTime"),
		EndTime:   f.instant("end_time", "endTime"),
		StartDate: f.instant("start_date", "startDate"),
		EndDate:   f.instant("end_date", "endDate"),
	}
}

func signals(f fields) (timeslot.Signals, error) {
	s := timeslot.Signals{
		IsBooked:   f.flag("is_booked", "isBooked"),
		BookingRef: f.ref("booking_id", "bookingId"),
	}

	v, ok := f.raw("booking")
	if !ok {
		return s, nil
	}
	if isObject(v) {
		nested, err := decodeObject(v)
		if err != nil {
			return s, err
		}
		s.Booking = &timeslot.Booking{ID: nested.ref("id", "booking_id", "bookingId")}
		return s, nil
	}
	if ref := refOf(v); ref != nil {
		s.Booking = &timeslot.Booking{ID: ref}
	}
	return s, nil
}

// summaryOf builds owner fields from a nested session object, falling back to
// the flat session id and any flat location/price fields.
func summaryOf(f fields, fallback session.Summary) (session.Summary, error) {
	out := fallback
	flatID, err := f.id("session_id", "sessionId")
	if err != nil {
		return out, err
	}
	if flatID != uuid.Nil {
		out.ID = flatID
	}
	if loc := f.str("location_name", "locationName"); loc != "" {
		out.LocationName = loc
	}
	out.Price = patch.FirstNonNil(f.number("price"), out.Price)

	nested, ok := f.object("session")
	if !ok {
		return out, nil
	}
	id, err := nested.id("id", "session_id", "sessionId")
	if err != nil {
		return out, err
	}
	if id != uuid.Nil {
		out.ID = id
	}
	if loc := nested.str("location_name", "locationName"); loc != "" {
		out.LocationName = loc
	}
	out.Price = patch.FirstNonNil(nested.number("price"), out.Price)
	return out, nil
}

func timeslotFrom(f fields, owner session.Summary) (shared.AnnotatedTimeslot, error) {
	id, err := f.id("id", "timeslot_id", "timeslotId")
	if err != nil {
		return shared.AnnotatedTimeslot{}, err
	}
	sig, err := signals(f)
	if err != nil {
		return shared.AnnotatedTimeslot{}, err
	}
	summary, err := summaryOf(f, owner)
	if err != nil {
		return shared.AnnotatedTimeslot{}, err
	}
	ts := timeslot.Reconstruct(id, summary.ID, timeslot.Normalize(rawTimes(f)), sig)
	return shared.AnnotatedTimeslot{Timeslot: ts, Owner: summary}, nil
}

func annotatedList(items []fields, owner session.Summary) ([]shared.AnnotatedTimeslot, error) {
	out := make([]shared.AnnotatedTimeslot, 0, len(items))
	for i, it := range items {
		a, err := timeslotFrom(it, owner)
		if err != nil {
			return nil, errs.Wrapf(err, "timeslot %d", i)
		}
		out = append(out, a)
	}
	return out, nil
}

func sessionFrom(f fields, mentorID uuid.UUID) (*session.Session, error) {
	id, err := f.id("id", "session_id", "sessionId")
	if err != nil {
		return nil, err
	}
	positionID, err := f.id("position_id", "positionId", "registered_position_id")
	if err != nil {
		return nil, err
	}
	owner, err := f.id("mentor_id", "mentorId")
	if err != nil {
		return nil, err
	}
	if owner == uuid.Nil {
		owner = mentorID
	}
	var createdAt time.Time
	if t, ok := f.instant("created_at", "createdAt").Parse(); ok {
		createdAt = t
	}
	return session.Reconstruct(
		id,
		owner,
		positionID,
		f.number("price"),
		f.str("location_name", "locationName"),
		f.str("location_map_url", "locationMapUrl", "locationMapURL"),
		f.strPtr("agenda_document_ref", "agendaDocumentRef"),
		createdAt,
	), nil
}

func sessionTimeslotsFrom(f fields, mentorID uuid.UUID) (shared.SessionTimeslots, error) {
	s, err := sessionFrom(f, mentorID)
	if err != nil {
		return shared.SessionTimeslots{}, err
	}
	items, err := f.list("timeslots", "timeSlots")
	if err != nil {
		return shared.SessionTimeslots{}, err
	}
	annotated, err := annotatedList(items, s.Summary())
	if err != nil {
		return shared.SessionTimeslots{}, err
	}
	slots := make([]*timeslot.Timeslot, 0, len(annotated))
	for _, a := range annotated {
		slots = append(slots, a.Timeslot)
	}
	return shared.SessionTimeslots{Session: s, Timeslots: slots}, nil
}

func defaultsFrom(f fields) (session.Defaults, error) {
	positionID, err := f.id("registered_position_id", "registeredPositionId", "position_id")
	if err != nil {
		return session.Defaults{}, err
	}
	return session.Defaults{
		DefaultRate:          f.number("default_rate", "defaultRate", "hourly_rate", "hourlyRate"),
		DefaultLocation:      f.str("default_location", "defaultLocation"),
		LocationMapURL:       f.str("location_map_url", "locationMapUrl", "locationMapURL"),
		RegisteredPositionID: positionID,
	}, nil
}

// createdIDs accepts {timeslot_ids:[...]}, {ids:[...]}, a list of ids or a list of
// timeslot objects.
func createdIDs(payload json.RawMessage) ([]uuid.UUID, error) {
	if len(payload) == 0 || isNull(payload) {
		return []uuid.UUID{}, nil
	}
	if isObject(payload) {
		obj, err := decodeObject(payload)
		if err != nil {
			return nil, err
		}
		v, ok := obj.raw("timeslot_ids", "timeslotIds", "ids")
		if !ok {
			if v, ok = obj.raw("timeslots", "timeSlots"); !ok {
				return []uuid.UUID{}, nil
			}
		}
		payload = v
	}

	var plain []string
	if err := json.Unmarshal(payload, &plain); err == nil {
		out := make([]uuid.UUID, 0, len(plain))
		for _, s := range plain {
			id, err := uuid.Parse(s)
			if err != nil {
				return nil, errs.Wrap(err, "created timeslot id")
			}
			out = append(out, id)
		}
		return out, nil
	}

	items, err := decodeList(payload)
	if err != nil {
		return nil, err
	}
	out := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		id, err := it.id("id", "timeslot_id", "timeslotId")
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
