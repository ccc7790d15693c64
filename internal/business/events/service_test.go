package events

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/luach-app/luach-backend/internal/database"
	"github.com/luach-app/luach-backend/internal/model"
	"github.com/luach-app/luach-backend/internal/pkg/clock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepository struct {
	nextID     int64
	events     map[int64]*model.Event
	listCalls  int
	statusErrs map[int64]error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		nextID:     1,
		events:     map[int64]*model.Event{},
		statusErrs: map[int64]error{},
	}
}

func (r *fakeRepository) CreateEvent(_ context.Context, _ database.Queryable, info *model.EventCreate) (*model.Event, error) {
	event := &model.Event{
		ID:          r.nextID,
		CreatedAt:   time.Now(),
		Status:      model.EventStatusActive,
		EventCreate: *info,
	}
	r.events[event.ID] = event
	r.nextID++

	return event, nil
}

func (r *fakeRepository) GetEventByID(_ context.Context, _ database.Queryable, id int64) (*model.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	copy := *event
	return &copy, nil
}

func (r *fakeRepository) GetEvents(_ context.Context, _ database.Queryable) ([]*model.Event, error) {
	r.listCalls++

	res := make([]*model.Event, 0, len(r.events))
	for _, e := range r.events {
		copy := *e
		res = append(res, &copy)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })

	return res, nil
}

func (r *fakeRepository) UpdateEvent(_ context.Context, _ database.Queryable, id int64, info *model.EventCreate) error {
	event, ok := r.events[id]
	if !ok {
		return model.ErrNoRecord
	}
	event.EventCreate = *info
	return nil
}

func (r *fakeRepository) UpdateEventStatus(_ context.Context, _ database.Queryable, id int64, status model.EventStatus) error {
	if err := r.statusErrs[id]; err != nil {
		return err
	}
	event, ok := r.events[id]
	if !ok {
		return model.ErrNoRecord
	}
	event.Status = status
	return nil
}

func (r *fakeRepository) DeleteEvent(_ context.Context, _ database.Queryable, id int64) error {
	if _, ok := r.events[id]; !ok {
		return model.ErrNoRecord
	}
	delete(r.events, id)
	return nil
}

type fakeCache struct {
	events        []*model.Event
	ok            bool
	sets          int
	invalidations int
}

func (c *fakeCache) Get(context.Context) ([]*model.Event, bool) {
	return c.events, c.ok
}

func (c *fakeCache) Set(_ context.Context, events []*model.Event) {
	c.events = events
	c.ok = true
	c.sets++
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.events = nil
	c.ok = false
	c.invalidations++
	return nil
}

func newTestService(t *testing.T, now time.Time) (*Service, *fakeRepository, *fakeCache) {
	t.Helper()

	repo := newFakeRepository()
	cache := &fakeCache{}
	s := NewService(nil, repo, cache, clock.NewFixed(now), zap.NewNop().Sugar())

	return s, repo, cache
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func validCreate(title string) *model.EventCreate {
	return &model.EventCreate{
		Title:     title,
		EventType: model.EventTypeTimeSpecific,
		StartDate: date(2024, time.March, 5),
		StartTime: "10:00",
	}
}

func TestCreateEventValidation(t *testing.T) {
	s, repo, _ := newTestService(t, date(2024, time.January, 1))
	ctx := context.Background()

	cases := []struct {
		name  string
		info  *model.EventCreate
		field string
	}{
		{
			name:  "missing title",
			info:  &model.EventCreate{EventType: model.EventTypeFullDay, StartDate: date(2024, time.March, 5)},
			field: "title",
		},
		{
			name:  "unknown event type",
			info:  &model.EventCreate{Title: "x", EventType: "weekly", StartDate: date(2024, time.March, 5)},
			field: "event_type",
		},
		{
			name:  "missing start date",
			info:  &model.EventCreate{Title: "x", EventType: model.EventTypeFullDay},
			field: "start_date",
		},
		{
			name: "malformed start time",
			info: &model.EventCreate{
				Title:     "x",
				EventType: model.EventTypeTimeSpecific,
				StartDate: date(2024, time.March, 5),
				StartTime: "morning",
			},
			field: "start_time",
		},
		{
			name: "malformed end time",
			info: &model.EventCreate{
				Title:     "x",
				EventType: model.EventTypeTimeSpecific,
				StartDate: date(2024, time.March, 5),
				StartTime: "10:00",
				EndTime:   "26:00",
			},
			field: "end_time",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateEvent(ctx, tc.info)

			var validationErr *model.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Contains(t, validationErr.Fields, tc.field)
		})
	}

	require.Empty(t, repo.events)
}

func TestCreateEventInvalidatesCache(t *testing.T) {
	s, repo, cache := newTestService(t, date(2024, time.January, 1))
	ctx := context.Background()

	cache.Set(ctx, nil)

	event, err := s.CreateEvent(ctx, validCreate("פגישה"))
	require.NoError(t, err)
	require.Equal(t, int64(1), event.ID)
	require.Equal(t, model.EventStatusActive, event.Status)

	require.Equal(t, 1, cache.invalidations)
	require.Len(t, repo.events, 1)
}

func TestGetEventsUsesCache(t *testing.T) {
	s, repo, cache := newTestService(t, date(2024, time.January, 1))
	ctx := context.Background()

	_, err := s.CreateEvent(ctx, validCreate("a"))
	require.NoError(t, err)

	// Miss: repo is hit and the result is cached.
	events, err := s.GetEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, 1, repo.listCalls)
	require.Equal(t, 1, cache.sets)

	// Hit: repo is left alone.
	events, err = s.GetEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, 1, repo.listCalls)
}

func TestGetCalendarFiltersAndSorts(t *testing.T) {
	s, _, _ := newTestService(t, date(2024, time.March, 1))
	ctx := context.Background()

	_, err := s.CreateEvent(ctx, &model.EventCreate{
		Title:     "פגישה",
		EventType: model.EventTypeTimeSpecific,
		StartDate: date(2024, time.March, 5),
		StartTime: "10:00",
	})
	require.NoError(t, err)

	_, err = s.CreateEvent(ctx, &model.EventCreate{
		Title:     "ספירה",
		EventType: model.EventTypeContinuous,
		StartDate: date(2024, time.February, 1),
	})
	require.NoError(t, err)

	archived, err := s.CreateEvent(ctx, &model.EventCreate{
		Title:     "ישן",
		EventType: model.EventTypeFullDay,
		StartDate: date(2024, time.March, 5),
	})
	require.NoError(t, err)
	_, err = s.ArchiveEvent(ctx, archived.ID)
	require.NoError(t, err)

	t.Run("default view hides archived, shows continuous first", func(t *testing.T) {
		occs, err := s.GetCalendar(ctx, model.EventsFilter{IncludeContinuous: true})
		require.NoError(t, err)
		require.Len(t, occs, 2)
		require.Equal(t, "ספירה", occs[0].Title)
		require.Equal(t, "פגישה", occs[1].Title)
	})

	t.Run("archived included on demand", func(t *testing.T) {
		occs, err := s.GetCalendar(ctx, model.EventsFilter{IncludeArchived: true, IncludeContinuous: true})
		require.NoError(t, err)
		require.Len(t, occs, 3)
	})

	t.Run("continuous excluded on demand", func(t *testing.T) {
		occs, err := s.GetCalendar(ctx, model.EventsFilter{})
		require.NoError(t, err)
		require.Len(t, occs, 1)
		require.Equal(t, "פגישה", occs[0].Title)
	})

	t.Run("window overlap", func(t *testing.T) {
		occs, err := s.GetCalendar(ctx, model.EventsFilter{
			From:              date(2024, time.March, 6),
			To:                date(2024, time.March, 7),
			IncludeContinuous: true,
		})
		require.NoError(t, err)
		require.Len(t, occs, 1)
		require.Equal(t, "ספירה", occs[0].Title)
	})
}

func TestUpdateEvent(t *testing.T) {
	s, _, cache := newTestService(t, date(2024, time.January, 1))
	ctx := context.Background()

	created, err := s.CreateEvent(ctx, validCreate("לפני"))
	require.NoError(t, err)

	info := validCreate("אחרי")
	updated, err := s.UpdateEvent(ctx, created.ID, info)
	require.NoError(t, err)
	require.Equal(t, "אחרי", updated.Title)
	require.Equal(t, 2, cache.invalidations)

	_, err = s.UpdateEvent(ctx, 999, info)
	require.ErrorIs(t, err, model.ErrNoRecord)
}

func TestDeleteEvent(t *testing.T) {
	s, repo, _ := newTestService(t, date(2024, time.January, 1))
	ctx := context.Background()

	created, err := s.CreateEvent(ctx, validCreate("a"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteEvent(ctx, created.ID))
	require.Empty(t, repo.events)

	require.ErrorIs(t, s.DeleteEvent(ctx, created.ID), model.ErrNoRecord)
}

func TestArchiveEventIdempotent(t *testing.T) {
	s, _, cache := newTestService(t, date(2024, time.January, 1))
	ctx := context.Background()

	created, err := s.CreateEvent(ctx, validCreate("a"))
	require.NoError(t, err)

	event, err := s.ArchiveEvent(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, model.EventStatusArchived, event.Status)
	require.Equal(t, 2, cache.invalidations)

	// Second archive changes nothing and skips the cache flush.
	event, err = s.ArchiveEvent(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, model.EventStatusArchived, event.Status)
	require.Equal(t, 2, cache.invalidations)

	event, err = s.UnarchiveEvent(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, model.EventStatusActive, event.Status)

	_, err = s.ArchiveEvent(ctx, 999)
	require.ErrorIs(t, err, model.ErrNoRecord)
}

func TestArchivePastEvents(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	s, repo, _ := newTestService(t, now)
	ctx := context.Background()

	past, err := s.CreateEvent(ctx, &model.EventCreate{
		Title:     "עבר",
		EventType: model.EventTypeFullDay,
		StartDate: date(2024, time.March, 1),
	})
	require.NoError(t, err)

	future, err := s.CreateEvent(ctx, &model.EventCreate{
		Title:     "עתיד",
		EventType: model.EventTypeFullDay,
		StartDate: date(2024, time.March, 20),
	})
	require.NoError(t, err)

	_, err = s.CreateEvent(ctx, &model.EventCreate{
		Title:     "פתוח",
		EventType: model.EventTypeContinuous,
		StartDate: date(2024, time.January, 1),
	})
	require.NoError(t, err)

	archived, err := s.ArchivePastEvents(ctx, now)
	require.NoError(t, err)
	require.Equal(t, 1, archived)
	require.Equal(t, model.EventStatusArchived, repo.events[past.ID].Status)
	require.Equal(t, model.EventStatusActive, repo.events[future.ID].Status)

	// Sweeping again finds nothing new.
	archived, err = s.ArchivePastEvents(ctx, now)
	require.NoError(t, err)
	require.Zero(t, archived)
}

func TestArchivePastEventsPartialFailure(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	s, repo, _ := newTestService(t, now)
	ctx := context.Background()

	broken, err := s.CreateEvent(ctx, &model.EventCreate{
		Title:     "תקול",
		EventType: model.EventTypeFullDay,
		StartDate: date(2024, time.March, 1),
	})
	require.NoError(t, err)

	fine, err := s.CreateEvent(ctx, &model.EventCreate{
		Title:     "תקין",
		EventType: model.EventTypeFullDay,
		StartDate: date(2024, time.March, 2),
	})
	require.NoError(t, err)

	repo.statusErrs[broken.ID] = errors.New("connection reset")

	archived, err := s.ArchivePastEvents(ctx, now)
	require.Error(t, err)
	require.Equal(t, 1, archived)
	require.Equal(t, model.EventStatusArchived, repo.events[fine.ID].Status)
	require.Equal(t, model.EventStatusActive, repo.events[broken.ID].Status)

	// Events deleted mid-sweep are skipped silently.
	repo.statusErrs[broken.ID] = model.ErrNoRecord

	archived, err = s.ArchivePastEvents(ctx, now)
	require.NoError(t, err)
	require.Zero(t, archived)
}

func TestWeeklyReport(t *testing.T) {
	now := date(2024, time.March, 1)
	s, _, _ := newTestService(t, now)
	ctx := context.Background()

	_, err := s.CreateEvent(ctx, &model.EventCreate{
		Title:     "פגישה",
		EventType: model.EventTypeTimeSpecific,
		StartDate: date(2024, time.March, 5),
		StartTime: "10:00",
	})
	require.NoError(t, err)

	_, err = s.CreateEvent(ctx, &model.EventCreate{
		Title:     "חופשה",
		EventType: model.EventTypeFullDay,
		StartDate: date(2024, time.March, 6),
		EndDate:   datePtr(2024, time.March, 8),
	})
	require.NoError(t, err)

	_, err = s.CreateEvent(ctx, &model.EventCreate{
		Title:     "מחוץ לשבוע",
		EventType: model.EventTypeFullDay,
		StartDate: date(2024, time.March, 20),
	})
	require.NoError(t, err)

	days, err := s.WeeklyReport(ctx, date(2024, time.March, 4))
	require.NoError(t, err)
	require.Len(t, days, 7)

	require.Equal(t, date(2024, time.March, 4), days[0].Date)
	require.Empty(t, days[0].Occurrences)

	require.Len(t, days[1].Occurrences, 1)
	require.Equal(t, "פגישה", days[1].Occurrences[0].Title)

	// A multi-day event shows up in every day it touches.
	for i := 2; i <= 4; i++ {
		require.Len(t, days[i].Occurrences, 1)
		require.Equal(t, "חופשה", days[i].Occurrences[0].Title)
	}

	require.Empty(t, days[5].Occurrences)
	require.Empty(t, days[6].Occurrences)
}
