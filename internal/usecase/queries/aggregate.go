package queries

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"mentor-availability/internal/domain/timeslot"
	"mentor-availability/internal/usecase/shared"
)

// Aggregate flattens every session's timeslots, filters them for the view and
// sorts them stably by key.
func (f *Formatter) Aggregate(sessions []shared.SessionTimeslots, view View, key SortKey) []DisplayTimeslot {
	out := make([]DisplayTimeslot, 0)
	for _, st := range sessions {
		if st.Session == nil {
			continue
		}
		owner := st.Session.Summary()
		for _, ts := range st.Timeslots {
			if view == ViewOffer && ts.Status() == timeslot.StatusBooked {
				continue
			}
			out = append(out, f.Format(ts, owner))
		}
	}
	SortBy(out, key)
	return out
}

// SortBy orders in place. Date and Time sort by start instant with missing starts last.
func SortBy(list []DisplayTimeslot, key SortKey) {
	switch key {
	case SortByLocation:
		slices.SortStableFunc(list, func(a, b DisplayTimeslot) int {
			return strings.Compare(a.LocationLabel, b.LocationLabel)
		})
	case SortByPrice:
		slices.SortStableFunc(list, func(a, b DisplayTimeslot) int {
			pa, pb := parsePriceLabel(a.PriceLabel), parsePriceLabel(b.PriceLabel)
			switch {
			case pa < pb:
				return -1
			case pa > pb:
				return 1
			default:
				return 0
			}
		})
	default:
		slices.SortStableFunc(list, func(a, b DisplayTimeslot) int {
			return compareStartAsc(a.StartInstant, b.StartInstant)
		})
	}
}

// SortNewestFirst is the recently-added ordering: start descending, missing starts last.
// It is not a SortKey.
func SortNewestFirst(list []DisplayTimeslot) {
	slices.SortStableFunc(list, func(a, b DisplayTimeslot) int {
		if a.StartInstant == nil || b.StartInstant == nil {
			return compareStartAsc(a.StartInstant, b.StartInstant)
		}
		return b.StartInstant.Compare(*a.StartInstant)
	})
}

// Take returns at most n items; n <= 0 keeps everything.
func Take(list []DisplayTimeslot, n int) []DisplayTimeslot {
	if n <= 0 || n >= len(list) {
		return list
	}
	return list[:n]
}

func compareStartAsc(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}

// parsePriceLabel reads "$25" as 25. Unreadable labels sort after every price.
func parsePriceLabel(label string) float64 {
	v, err := strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(label), "$"), 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}
