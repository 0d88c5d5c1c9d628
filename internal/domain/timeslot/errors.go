package timeslot

import (
	"fmt"
	"strings"
	"time"

	"mentor-availability/internal/pkg/errs"
)

var (
	ErrInvalidWindow = errs.New("invalid timeslot window")
	ErrNoDrafts      = &ValidationError{}
)

// DraftIssue names one rejected draft by its position in the batch.
type DraftIssue struct {
	Index  int
	Start  time.Time
	End    time.Time
	Reason string
}

func (i DraftIssue) String() string {
	return fmt.Sprintf("draft #%d [%s, %s]: %s", i.Index, formatBound(i.Start), formatBound(i.End), i.Reason)
}

// ValidationError lists every offending draft of a rejected batch.
type ValidationError struct {
	Issues []DraftIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "at least one timeslot draft is required"
	}
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return "invalid timeslot drafts: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidWindow
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return "missing"
	}
	return t.UTC().Format(time.RFC3339)
}
