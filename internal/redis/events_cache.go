package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/luach-app/luach-backend/internal/config"
	"github.com/luach-app/luach-backend/internal/model"
	"go.uber.org/zap"
)

const eventsKey = "events:canonical"

const cacheDateFormat = "2006-01-02"

// EventsCache keeps a short-lived copy of the canonical event list. It is
// best-effort: read and write failures degrade to a cache miss, only
// invalidation errors are reported so mutations can log them.
type EventsCache struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

// cachedEvent is the wire shape stored in Redis. Civil dates go through as
// strings and are rebuilt in the calendar timezone on read; marshaling the
// time.Time values directly would pin them to a fixed offset.
type cachedEvent struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`
	Title     string    `json:"title"`
	Details   string    `json:"details,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	EventType string    `json:"event_type"`
	StartDate string    `json:"start_date"`
	EndDate   *string   `json:"end_date,omitempty"`
	StartTime string    `json:"start_time,omitempty"`
	EndTime   string    `json:"end_time,omitempty"`
	Color     string    `json:"color,omitempty"`
	UserID    *int64    `json:"user_id,omitempty"`
}

func toCachedEvent(e *model.Event) *cachedEvent {
	var endDate *string
	if e.EndDate != nil {
		s := e.EndDate.Format(cacheDateFormat)
		endDate = &s
	}

	return &cachedEvent{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		Status:    string(e.Status),
		Title:     e.Title,
		Details:   e.Details,
		Notes:     e.Notes,
		EventType: string(e.EventType),
		StartDate: e.StartDate.Format(cacheDateFormat),
		EndDate:   endDate,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Color:     e.Color,
		UserID:    e.UserID,
	}
}

func (d *cachedEvent) toEvent(loc *time.Location) (*model.Event, error) {
	startDate, err := time.ParseInLocation(cacheDateFormat, d.StartDate, loc)
	if err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}

	var endDate *time.Time
	if d.EndDate != nil {
		e, err := time.ParseInLocation(cacheDateFormat, *d.EndDate, loc)
		if err != nil {
			return nil, fmt.Errorf("parse end date: %w", err)
		}
		endDate = &e
	}

	return &model.Event{
		ID:        d.ID,
		CreatedAt: d.CreatedAt,
		Status:    model.EventStatus(d.Status),
		EventCreate: model.EventCreate{
			Title:     d.Title,
			Details:   d.Details,
			Notes:     d.Notes,
			EventType: model.EventType(d.EventType),
			StartDate: startDate,
			EndDate:   endDate,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			Color:     d.Color,
			UserID:    d.UserID,
		},
	}, nil
}

func NewEventsCache(pool *redis.Pool, logger *zap.SugaredLogger) *EventsCache {
	return &EventsCache{
		pool:   pool,
		logger: logger,
	}
}

func (c *EventsCache) Get(ctx context.Context) ([]*model.Event, bool) {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		c.logger.Warnw("events cache unavailable", "err", err)
		return nil, false
	}
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", eventsKey))
	if errors.Is(err, redis.ErrNil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warnw("events cache read failed", "err", err)
		return nil, false
	}

	var dtos []*cachedEvent
	if err := json.Unmarshal(data, &dtos); err != nil {
		c.logger.Warnw("events cache entry corrupted", "err", err)
		return nil, false
	}

	loc := config.Location()
	events := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		event, err := d.toEvent(loc)
		if err != nil {
			c.logger.Warnw("events cache entry corrupted", "err", err)
			return nil, false
		}
		events[i] = event
	}

	return events, true
}

func (c *EventsCache) Set(ctx context.Context, events []*model.Event) {
	dtos := make([]*cachedEvent, len(events))
	for i, e := range events {
		dtos[i] = toCachedEvent(e)
	}

	data, err := json.Marshal(dtos)
	if err != nil {
		c.logger.Warnw("events cache marshal failed", "err", err)
		return
	}

	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		c.logger.Warnw("events cache unavailable", "err", err)
		return
	}
	defer conn.Close()

	if _, err := conn.Do("SET", eventsKey, data, "EX", int(config.EventsCacheTTL().Seconds())); err != nil {
		c.logger.Warnw("events cache write failed", "err", err)
	}
}

func (c *EventsCache) Invalidate(ctx context.Context) error {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("DEL", eventsKey); err != nil {
		return fmt.Errorf("delete cached events: %w", err)
	}

	return nil
}
