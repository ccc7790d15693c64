package events

import (
	"context"
	"fmt"
	"time"

	"github.com/luach-app/luach-backend/internal/database"
	"github.com/luach-app/luach-backend/internal/model"
)

func (r *Repository) CreateEvent(ctx context.Context, q database.Queryable, info *model.EventCreate) (*model.Event, error) {
	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(
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
		Values(
			info.Title,
			nullIfEmpty(info.Details),
			nullIfEmpty(info.Notes),
			string(info.EventType),
			info.StartDate,
			info.EndDate,
			nullIfEmpty(info.StartTime),
			nullIfEmpty(info.EndTime),
			info.Color,
			string(model.EventStatusActive),
			info.UserID,
		).
		Suffix("returning id, created_at")

	row := &struct {
		ID        int64
		CreatedAt time.Time
	}{}
	if err := q.Get(ctx, row, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return &model.Event{
		ID:          row.ID,
		CreatedAt:   row.CreatedAt,
		Status:      model.EventStatusActive,
		EventCreate: *info,
	}, nil
}
