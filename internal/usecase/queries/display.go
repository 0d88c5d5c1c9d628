package queries

import (
	"fmt"
	"math"
	"time"

	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/domain/timeslot"
	"mentor-availability/internal/usecase/shared"
)

const (
	labelTBD        = "TBD"
	dateLabelLayout = "Mon, Jan 2"
	timeLabelLayout = "3:04 PM"
)

// Formatter renders display labels in one time zone. Format is pure.
type Formatter struct {
	loc *time.Location
}

func NewFormatter(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{loc: loc}
}

func (f *Formatter) Format(ts *timeslot.Timeslot, owner session.Summary) DisplayTimeslot {
	times := ts.Times()
	start := copyTime(times.Start)
	end := copyTime(times.End)

	return DisplayTimeslot{
		ID:             ts.ID(),
		SessionID:      ts.SessionID(),
		Status:         ts.Status(),
		DateLabel:      f.dateLabel(start),
		DurationLabel:  fmt.Sprintf("%d min", times.DurationMinutes()),
		TimeRangeLabel: f.timeRangeLabel(start, end),
		LocationLabel:  locationLabel(owner.LocationName),
		PriceLabel:     priceLabel(owner.Price),
		StartInstant:   start,
		EndInstant:     end,
		IsBooked:       ts.IsBooked(),
		BookingRef:     ts.BookingRef(),
		Session:        copySummary(owner),
	}
}

func (f *Formatter) FormatAll(items []shared.AnnotatedTimeslot) []DisplayTimeslot {
	out := make([]DisplayTimeslot, 0, len(items))
	for _, it := range items {
		out = append(out, f.Format(it.Timeslot, it.Owner))
	}
	return out
}

func (f *Formatter) dateLabel(start *time.Time) string {
	if start == nil {
		return labelTBD
	}
	return start.In(f.loc).Format(dateLabelLayout)
}

func (f *Formatter) timeRangeLabel(start, end *time.Time) string {
	if start == nil || end == nil {
		return labelTBD
	}
	return start.In(f.loc).Format(timeLabelLayout) + " - " + end.In(f.loc).Format(timeLabelLayout)
}

func locationLabel(name string) string {
	if name == "" {
		return labelTBD
	}
	return name
}

func priceLabel(price *float64) string {
	if price == nil || math.IsNaN(*price) || math.IsInf(*price, 0) {
		return "$0"
	}
	return fmt.Sprintf("$%d", int64(math.Floor(*price)))
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func copySummary(s session.Summary) session.Summary {
	if s.Price != nil {
		p := *s.Price
		s.Price = &p
	}
	return s
}
