package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/luach-app/luach-backend/internal/database"
	"github.com/luach-app/luach-backend/internal/model"
)

// UpdateEvent replaces every user-supplied field of an event.
func (r *Repository) UpdateEvent(ctx context.Context, q database.Queryable, id int64, info *model.EventCreate) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		SetMap(map[string]interface{}{
			"title":      info.Title,
			"details":    nullIfEmpty(info.Details),
			"notes":      nullIfEmpty(info.Notes),
			"event_type": string(info.EventType),
			"start_date": info.StartDate,
			"end_date":   info.EndDate,
			"start_time": nullIfEmpty(info.StartTime),
			"end_time":   nullIfEmpty(info.EndTime),
			"color":      info.Color,
			"user_id":    info.UserID,
		}).
		Where(sq.Eq{"id": id})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}

// UpdateEventStatus is the targeted status flip used by archiving.
func (r *Repository) UpdateEventStatus(ctx context.Context, q database.Queryable, id int64, status model.EventStatus) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		Set("status", string(status)).
		Where(sq.Eq{"id": id})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
