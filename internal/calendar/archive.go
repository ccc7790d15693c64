package calendar

import (
	"time"

	"github.com/luach-app/luach-backend/internal/model"
)

// archiveFallbackClock is the end of day assumed for a time-specific event
// with no end time when checking whether it is over.
const archiveFallbackClock = "23:59"

// ArchiveEligible reports whether an active event is over and may be flipped
// to archived. Already-archived events are never re-evaluated, and an
// open-ended continuous event is never eligible.
func ArchiveEligible(e *model.Event, now time.Time) bool {
	if e.Status == model.EventStatusArchived {
		return false
	}

	switch e.EventType {
	case model.EventTypeContinuous:
		return e.EndDate != nil && endOfDay(*e.EndDate).Before(now)

	case model.EventTypeFullDay:
		endDate := e.StartDate
		if e.EndDate != nil {
			endDate = *e.EndDate
		}
		return endOfDay(endDate).Before(now)

	default: // time_specific
		endDate := e.StartDate
		if e.EndDate != nil {
			endDate = *e.EndDate
		}
		end, ok := atClock(endDate, e.EndTime)
		if !ok {
			end, _ = atClock(endDate, archiveFallbackClock)
		}
		return end.Before(now)
	}
}
