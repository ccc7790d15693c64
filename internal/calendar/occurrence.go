package calendar

import (
	"time"

	"github.com/luach-app/luach-backend/internal/model"
)

const (
	// AlertColor is forced on continuous events regardless of the stored color.
	AlertColor = "#EF4444"
	// DefaultColor is used when an event has no stored color.
	DefaultColor = "#3B82F6"
)

const clockLayout = "15:04"

// defaultDuration is assumed for a time-specific event with no end time or
// end date.
const defaultDuration = time.Hour

// Occurrence is the concrete [start, end) display interval derived from a
// stored event.
type Occurrence struct {
	EventID   int64
	Title     string
	Start     time.Time
	End       time.Time
	AllDay    bool
	Color     string
	EventType model.EventType
	Details   string
	Notes     string
	Status    model.EventStatus
}

// Map derives the display occurrence of an event. The current instant is only
// used as the far-future horizon for open-ended continuous events. Malformed
// time-of-day strings are treated as absent; a missing start date is a
// data-integrity error.
func Map(e *model.Event, now time.Time) (*Occurrence, error) {
	if e.StartDate.IsZero() {
		return nil, model.ErrInvalidStartDate
	}

	occ := &Occurrence{
		EventID:   e.ID,
		Title:     e.Title,
		Color:     DisplayColor(e),
		EventType: e.EventType,
		Details:   e.Details,
		Notes:     e.Notes,
		Status:    e.Status,
	}

	switch e.EventType {
	case model.EventTypeContinuous:
		occ.Start = startOfDay(e.StartDate)
		if e.EndDate != nil {
			occ.End = endOfDay(*e.EndDate)
		} else {
			// Open-ended: render as ongoing for the next year.
			occ.End = endOfDay(now.In(e.StartDate.Location()).AddDate(1, 0, 0))
		}
		occ.AllDay = true

	case model.EventTypeFullDay:
		occ.Start = startOfDay(e.StartDate)
		if e.EndDate != nil {
			occ.End = endOfDay(*e.EndDate)
		} else {
			occ.End = endOfDay(e.StartDate)
		}
		occ.AllDay = true

	default: // time_specific
		if start, ok := atClock(e.StartDate, e.StartTime); ok {
			occ.Start = start
		} else {
			occ.Start = startOfDay(e.StartDate)
		}

		endTime, hasEndTime := parseClock(e.EndTime)
		switch {
		case e.EndDate != nil && hasEndTime:
			occ.End = startOfDay(*e.EndDate).Add(endTime)
		case hasEndTime:
			occ.End = startOfDay(e.StartDate).Add(endTime)
		case e.EndDate != nil:
			occ.End = endOfDay(*e.EndDate)
		default:
			occ.End = occ.Start.Add(defaultDuration)
		}
	}

	return occ, nil
}

// DisplayColor resolves the effective color of an event.
func DisplayColor(e *model.Event) string {
	if e.EventType == model.EventTypeContinuous {
		return AlertColor
	}
	if e.Color == "" {
		return DefaultColor
	}
	return e.Color
}

// ParseClock reports whether s is a well-formed "HH:MM" time of day.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func parseClock(s string) (time.Duration, bool) {
	if s == "" {
		return 0, false
	}
	d, err := ParseClock(s)
	if err != nil {
		return 0, false
	}
	return d, true
}

func atClock(date time.Time, s string) (time.Time, bool) {
	d, ok := parseClock(s)
	if !ok {
		return time.Time{}, false
	}
	return startOfDay(date).Add(d), true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
