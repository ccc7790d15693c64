package events

import (
	"time"

	"github.com/luach-app/luach-backend/internal/model"
)

type eventDTO struct {
	ID        int64
	CreatedAt time.Time
	Title     string
	Details   *string
	Notes     *string
	EventType string
	StartDate time.Time
	EndDate   *time.Time
	StartTime *string
	EndTime   *string
	Color     string
	Status    string
	UserID    *int64
}

func (r *Repository) mapToEvent(dto *eventDTO) *model.Event {
	var endDate *time.Time
	if dto.EndDate != nil {
		d := civilDate(*dto.EndDate, r.loc)
		endDate = &d
	}

	return &model.Event{
		ID:        dto.ID,
		CreatedAt: dto.CreatedAt,
		Status:    model.EventStatus(dto.Status),
		EventCreate: model.EventCreate{
			Title:     dto.Title,
			Details:   deref(dto.Details),
			Notes:     deref(dto.Notes),
			EventType: model.EventType(dto.EventType),
			StartDate: civilDate(dto.StartDate, r.loc),
			EndDate:   endDate,
			StartTime: deref(dto.StartTime),
			EndTime:   deref(dto.EndTime),
			Color:     dto.Color,
			UserID:    dto.UserID,
		},
	}
}

// civilDate rebuilds a date column value as midnight in the calendar timezone.
func civilDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
