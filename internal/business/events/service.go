package events

import (
	"context"

	"github.com/luach-app/luach-backend/internal/database"
	"github.com/luach-app/luach-backend/internal/model"
	"github.com/luach-app/luach-backend/internal/pkg/clock"
	"go.uber.org/zap"
)

// Service orchestrates event persistence: validation before the store, the
// canonical list cache, derived calendar views, and archiving.
type Service struct {
	db               database.PGX
	eventsRepository eventsRepository
	cache            eventsCache
	clock            clock.Clock
	logger           *zap.SugaredLogger
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, info *model.EventCreate) (*model.Event, error)
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error)
	GetEvents(ctx context.Context, q database.Queryable) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, q database.Queryable, id int64, info *model.EventCreate) error
	UpdateEventStatus(ctx context.Context, q database.Queryable, id int64, status model.EventStatus) error
	DeleteEvent(ctx context.Context, q database.Queryable, id int64) error
}

type eventsCache interface {
	Get(ctx context.Context) ([]*model.Event, bool)
	Set(ctx context.Context, events []*model.Event)
	Invalidate(ctx context.Context) error
}

func NewService(
	db database.PGX,
	repo eventsRepository,
	cache eventsCache,
	clk clock.Clock,
	logger *zap.SugaredLogger,
) *Service {
	return &Service{
		db:               db,
		eventsRepository: repo,
		cache:            cache,
		clock:            clk,
		logger:           logger,
	}
}

func (s *Service) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warnw("failed to invalidate events cache", "err", err)
	}
}
