package archiver

import (
	"context"
	"fmt"
	"time"

	"github.com/luach-app/luach-backend/internal/pkg/clock"
	"github.com/robfig/cron/v3"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

// Sweeper periodically flips past events to archived. It is fire-and-forget:
// sweep failures are logged and the next run proceeds as usual.
type Sweeper struct {
	logger   *zap.SugaredLogger
	events   eventsService
	clock    clock.Clock
	schedule string
}

type eventsService interface {
	ArchivePastEvents(ctx context.Context, now time.Time) (int, error)
}

func NewSweeper(logger *zap.SugaredLogger, events eventsService, clk clock.Clock, schedule string) *Sweeper {
	return &Sweeper{
		logger:   logger,
		events:   events,
		clock:    clk,
		schedule: schedule,
	}
}

// Start runs one immediate sweep and schedules the rest. The cron is bound to
// process shutdown.
func (s *Sweeper) Start(ctx context.Context) error {
	c := cron.New()

	if _, err := c.AddFunc(s.schedule, func() {
		s.sweep(ctx)
	}); err != nil {
		return fmt.Errorf("schedule sweep %q: %w", s.schedule, err)
	}

	go s.sweep(ctx)
	c.Start()

	closer.Bind(func() {
		<-c.Stop().Done()
	})

	return nil
}

func (s *Sweeper) sweep(ctx context.Context) {
	now := s.clock.Now()

	archived, err := s.events.ArchivePastEvents(ctx, now)
	if err != nil {
		s.logger.Errorw("archival sweep finished with errors", "archived", archived, "err", err)
		return
	}

	if archived > 0 {
		s.logger.Infow("archival sweep finished", "archived", archived)
	} else {
		s.logger.Debugw("archival sweep finished, nothing to archive")
	}
}
