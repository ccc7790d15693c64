package events

import (
	"time"

	"github.com/luach-app/luach-backend/internal/database"
)

// Repository persists events. The location is the calendar timezone civil
// dates are rebuilt in when rows are read back.
type Repository struct {
	loc *time.Location
}

func NewRepository(loc *time.Location) *Repository {
	return &Repository{loc: loc}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"created_at",
		"title",
		"details",
		"notes",
		"event_type",
		"start_date",
		"end_date",
		"start_time",
		"end_time",
		"color",
		"status",
		"user_id",
	).
	From(database.EventsTable)
