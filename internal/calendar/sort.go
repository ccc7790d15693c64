package calendar

import (
	"sort"

	"github.com/luach-app/luach-backend/internal/model"
)

// Sort orders occurrences for display: continuous banners first, then full-day
// events, then time-specific ones chronologically. Title is the final tiebreak,
// so mixed lists are fully deterministic. Continuous events preceding scheduled
// ones on the same day is a contract the views rely on.
func Sort(occs []*Occurrence) {
	sort.SliceStable(occs, func(i, j int) bool {
		a, b := occs[i], occs[j]

		if pa, pb := typePriority(a.EventType), typePriority(b.EventType); pa != pb {
			return pa < pb
		}

		if a.EventType == model.EventTypeTimeSpecific && !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}

		return a.Title < b.Title
	})
}

func typePriority(t model.EventType) int {
	switch t {
	case model.EventTypeContinuous:
		return 0
	case model.EventTypeFullDay:
		return 1
	default:
		return 2
	}
}
