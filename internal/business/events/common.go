package events

import (
	"github.com/luach-app/luach-backend/internal/calendar"
	"github.com/luach-app/luach-backend/internal/model"
	"github.com/luach-app/luach-backend/internal/pkg/validator"
)

// validateEvent rejects malformed input before it reaches the store. Nothing
// here is coerced to a default: a bad field fails loudly with its own message.
func validateEvent(info *model.EventCreate) error {
	v := validator.New()

	v.Check(info.Title != "", "title", "title must be provided")
	v.Check(info.EventType.Valid(), "event_type", "must be continuous, full_day or time_specific")
	v.Check(!info.StartDate.IsZero(), "start_date", "start date must be provided")

	if info.StartTime != "" {
		_, err := calendar.ParseClock(info.StartTime)
		v.Check(err == nil, "start_time", "must be a HH:MM time of day")
	}
	if info.EndTime != "" {
		_, err := calendar.ParseClock(info.EndTime)
		v.Check(err == nil, "end_time", "must be a HH:MM time of day")
	}

	if !v.Valid() {
		return &model.ValidationError{Fields: v.Errors}
	}

	return nil
}
