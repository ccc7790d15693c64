package model

import "time"

// EventType classifies how an event occupies the calendar.
type EventType string

const (
	// EventTypeContinuous spans from its start date indefinitely, or until an
	// optional end date. Always rendered as an all-day banner.
	EventTypeContinuous EventType = "continuous"
	// EventTypeFullDay spans one or more complete calendar days.
	EventTypeFullDay EventType = "full_day"
	// EventTypeTimeSpecific has a concrete start time and an optional end time.
	EventTypeTimeSpecific EventType = "time_specific"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeContinuous, EventTypeFullDay, EventTypeTimeSpecific:
		return true
	}
	return false
}

type EventStatus string

const (
	EventStatusActive   EventStatus = "active"
	EventStatusArchived EventStatus = "archived"
)

// EventCreate carries the user-supplied fields of an event. Dates are civil
// dates at midnight in the calendar timezone; times of day are "HH:MM" strings
// and meaningful only for time-specific events.
type EventCreate struct {
	Title     string
	Details   string
	Notes     string
	EventType EventType
	StartDate time.Time
	EndDate   *time.Time
	StartTime string
	EndTime   string
	Color     string
	UserID    *int64
}

type Event struct {
	ID        int64
	CreatedAt time.Time
	Status    EventStatus
	EventCreate
}

// EventsFilter selects which derived occurrence views to produce. From/To
// bound the display interval overlap; zero values mean unbounded.
type EventsFilter struct {
	From              time.Time
	To                time.Time
	IncludeArchived   bool
	IncludeContinuous bool
}
