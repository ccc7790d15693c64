package events

import (
	"context"
	"fmt"

	"github.com/luach-app/luach-backend/internal/model"
)

func (s *Service) CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error) {
	if err := validateEvent(info); err != nil {
		return nil, err
	}

	event, err := s.eventsRepository.CreateEvent(ctx, s.db, info)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
	}

	s.invalidateCache(ctx)

	return event, nil
}
