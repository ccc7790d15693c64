package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luach-app/luach-backend/internal/calendar"
	"github.com/luach-app/luach-backend/internal/model"
	"go.uber.org/multierr"
)

// ArchiveEvent flips an event to archived. Archiving an already-archived
// event is a no-op, so the operation is safe to repeat.
func (s *Service) ArchiveEvent(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	if event.Status == model.EventStatusArchived {
		return event, nil
	}

	if err := s.eventsRepository.UpdateEventStatus(ctx, s.db, id, model.EventStatusArchived); err != nil {
		return nil, fmt.Errorf("eventsRepository.UpdateEventStatus: %w", err)
	}

	event.Status = model.EventStatusArchived
	s.invalidateCache(ctx)

	return event, nil
}

// UnarchiveEvent is the manual, unconstrained reverse flip. The automatic
// sweep never takes this direction.
func (s *Service) UnarchiveEvent(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	if event.Status == model.EventStatusActive {
		return event, nil
	}

	if err := s.eventsRepository.UpdateEventStatus(ctx, s.db, id, model.EventStatusActive); err != nil {
		return nil, fmt.Errorf("eventsRepository.UpdateEventStatus: %w", err)
	}

	event.Status = model.EventStatusActive
	s.invalidateCache(ctx)

	return event, nil
}

// ArchivePastEvents flips every active event whose effective end instant is
// before now. Each flip is applied independently: one failure is collected
// and the sweep moves on. Returns how many events were archived.
func (s *Service) ArchivePastEvents(ctx context.Context, now time.Time) (int, error) {
	// Sweep decisions always come from the store, not the cache.
	events, err := s.eventsRepository.GetEvents(ctx, s.db)
	if err != nil {
		return 0, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	archived := 0
	var errs error

	for _, e := range events {
		if !calendar.ArchiveEligible(e, now) {
			continue
		}

		if err := s.eventsRepository.UpdateEventStatus(ctx, s.db, e.ID, model.EventStatusArchived); err != nil {
			if errors.Is(err, model.ErrNoRecord) {
				// Deleted since the list was fetched.
				continue
			}
			errs = multierr.Append(errs, fmt.Errorf("archive event %d: %w", e.ID, err))
			continue
		}

		archived++
	}

	if archived > 0 {
		s.invalidateCache(ctx)
	}

	return archived, errs
}
