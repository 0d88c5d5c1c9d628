package timeslot

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Accepted text layouts, most specific first. Layouts without an offset are read as UTC.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

const defaultDurationMinutes = 60

// RawInstant is an upstream time field as received: text, a typed time, or absent.
type RawInstant struct {
	text  string
	value *time.Time
}

func RawText(s string) RawInstant {
	return RawInstant{text: strings.TrimSpace(s)}
}

func RawTime(t time.Time) RawInstant {
	if t.IsZero() {
		return RawInstant{}
	}
	return RawInstant{value: &t}
}

func RawTimePtr(t *time.Time) RawInstant {
	if t == nil {
		return RawInstant{}
	}
	return RawTime(*t)
}

// Present reports whether the field carried any value, parseable or not.
func (r RawInstant) Present() bool {
	return r.value != nil || r.text != ""
}

func (r RawInstant) Parse() (time.Time, bool) {
	if r.value != nil {
		return r.value.UTC(), true
	}
	return ParseInstant(r.text)
}

// UnmarshalJSON accepts a string, an epoch-milliseconds number, or null.
func (r *RawInstant) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = RawInstant{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = RawText(s)
		return nil
	}
	ms, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		// not a time; keep it as unparseable text rather than failing the whole payload
		*r = RawText(string(b))
		return nil
	}
	*r = RawTime(time.UnixMilli(int64(ms)).UTC())
	return nil
}

// ParseInstant parses one of the accepted layouts or a string of epoch milliseconds.
func ParseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if isDigits(s) {
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(ms).UTC(), true
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// RawTimes carries both field-name pairs an upstream record may use.
type RawTimes struct {
	StartTime RawInstant
	EndTime   RawInstant
	StartDate RawInstant // legacy
	EndDate   RawInstant // legacy
}

// Times is the canonical instant pair. Either side may be nil.
type Times struct {
	Start *time.Time
	End   *time.Time
}

// Normalize chooses one field-name pair as a whole: start_time/end_time when
// either of them is present, otherwise start_date/end_date. Pairs are never mixed.
// Unparseable values become nil.
func Normalize(raw RawTimes) Times {
	start, end := raw.StartDate, raw.EndDate
	if raw.StartTime.Present() || raw.EndTime.Present() {
		start, end = raw.StartTime, raw.EndTime
	}
	return Times{Start: parsed(start), End: parsed(end)}
}

func parsed(r RawInstant) *time.Time {
	t, ok := r.Parse()
	if !ok {
		return nil
	}
	return &t
}

func (t Times) Complete() bool {
	return t.Start != nil && t.End != nil
}

// DurationMinutes is round((end-start)/60000), or 60 when either instant is missing.
func (t Times) DurationMinutes() int {
	if !t.Complete() {
		return defaultDurationMinutes
	}
	ms := t.End.Sub(*t.Start).Milliseconds()
	return int(math.Round(float64(ms) / 60000))
}
