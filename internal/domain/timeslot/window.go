package timeslot

import "time"

// Window is a validated [start, end) pair.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() {
		return Window{}, ErrInvalidWindow
	}
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start.UTC(), end: end.UTC()}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Times() Times {
	start, end := w.start, w.end
	return Times{Start: &start, End: &end}
}

// Draft is a caller-supplied window that has not been validated yet.
type Draft struct {
	Start time.Time
	End   time.Time
}

// ValidateDrafts checks the whole batch and returns every failure at once.
func ValidateDrafts(drafts []Draft) ([]Window, error) {
	if len(drafts) == 0 {
		return nil, ErrNoDrafts
	}

	windows := make([]Window, 0, len(drafts))
	var issues []DraftIssue
	for i, d := range drafts {
		w, err := NewWindow(d.Start, d.End)
		if err != nil {
			issues = append(issues, DraftIssue{Index: i, Start: d.Start, End: d.End, Reason: reasonFor(d)})
			continue
		}
		windows = append(windows, w)
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return windows, nil
}

func reasonFor(d Draft) string {
	switch {
	case d.Start.IsZero() && d.End.IsZero():
		return "start and end are missing or unparseable"
	case d.Start.IsZero():
		return "start is missing or unparseable"
	case d.End.IsZero():
		return "end is missing or unparseable"
	default:
		return "start must be before end"
	}
}
