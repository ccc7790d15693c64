package events

import (
	"context"
	"fmt"

	"github.com/luach-app/luach-backend/internal/calendar"
	"github.com/luach-app/luach-backend/internal/model"
)

// GetEvents returns the canonical event list, ordered by start date. The list
// is served from the cache when present; derived views always start from it.
func (s *Service) GetEvents(ctx context.Context) ([]*model.Event, error) {
	if events, ok := s.cache.Get(ctx); ok {
		return events, nil
	}

	events, err := s.eventsRepository.GetEvents(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	s.cache.Set(ctx, events)

	return events, nil
}

func (s *Service) GetEventByID(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	return event, nil
}

// GetCalendar re-derives the occurrence view from the canonical list:
// visibility toggles, display-interval overlap with [from, to), priority sort.
func (s *Service) GetCalendar(ctx context.Context, filter model.EventsFilter) ([]*calendar.Occurrence, error) {
	events, err := s.GetEvents(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	res := make([]*calendar.Occurrence, 0, len(events))
	for _, e := range events {
		if !filter.IncludeArchived && e.Status == model.EventStatusArchived {
			continue
		}
		if !filter.IncludeContinuous && e.EventType == model.EventTypeContinuous {
			continue
		}

		occ, err := calendar.Map(e, now)
		if err != nil {
			return nil, fmt.Errorf("map event %d: %w", e.ID, err)
		}

		if !filter.From.IsZero() && !occ.End.After(filter.From) {
			continue
		}
		if !filter.To.IsZero() && !occ.Start.Before(filter.To) {
			continue
		}

		res = append(res, occ)
	}

	calendar.Sort(res)

	return res, nil
}
