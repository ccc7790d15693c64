package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/luach-app/luach-backend/internal/model"
)

// UpdateEvent replaces every user-supplied field and returns the stored event.
// Last write wins; there is no concurrency token.
func (s *Service) UpdateEvent(ctx context.Context, id int64, info *model.EventCreate) (*model.Event, error) {
	if err := validateEvent(info); err != nil {
		return nil, err
	}

	if err := s.eventsRepository.UpdateEvent(ctx, s.db, id, info); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
	}

	s.invalidateCache(ctx)

	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	return event, nil
}
