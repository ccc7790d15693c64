package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/luach-app/luach-backend/internal/model"
)

func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.eventsRepository.DeleteEvent(ctx, s.db, id); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return model.ErrNoRecord
		}
		return fmt.Errorf("eventsRepository.DeleteEvent: %w", err)
	}

	s.invalidateCache(ctx)

	return nil
}
