package events

import (
	"context"
	"time"

	"github.com/luach-app/luach-backend/internal/calendar"
	"github.com/luach-app/luach-backend/internal/model"
)

// DayReport is one day bucket of the weekly report.
type DayReport struct {
	Date        time.Time
	Occurrences []*calendar.Occurrence
}

// WeeklyReport buckets the occurrences of seven consecutive days starting at
// start (a civil date at midnight). Archived events are left out; each day
// keeps the display sort order.
func (s *Service) WeeklyReport(ctx context.Context, start time.Time) ([]*DayReport, error) {
	end := start.AddDate(0, 0, 7)

	occs, err := s.GetCalendar(ctx, model.EventsFilter{
		From:              start,
		To:                end,
		IncludeContinuous: true,
	})
	if err != nil {
		return nil, err
	}

	days := make([]*DayReport, 7)
	for i := range days {
		dayStart := start.AddDate(0, 0, i)
		dayEnd := start.AddDate(0, 0, i+1)

		day := &DayReport{Date: dayStart}
		for _, occ := range occs {
			if occ.Start.Before(dayEnd) && occ.End.After(dayStart) {
				day.Occurrences = append(day.Occurrences, occ)
			}
		}

		days[i] = day
	}

	return days, nil
}
