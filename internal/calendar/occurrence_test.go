package calendar

import (
	"testing"
	"time"

	"github.com/luach-app/luach-backend/internal/model"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestMapFullDay(t *testing.T) {
	now := date(2024, time.January, 1)

	t.Run("with end date", func(t *testing.T) {
		occ, err := Map(&model.Event{
			ID: 1,
			EventCreate: model.EventCreate{
				Title:     "חופשה",
				EventType: model.EventTypeFullDay,
				StartDate: date(2024, time.January, 10),
				EndDate:   datePtr(2024, time.January, 12),
			},
		}, now)
		require.NoError(t, err)

		require.Equal(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), occ.Start)
		require.Equal(t, time.Date(2024, time.January, 12, 23, 59, 59, 0, time.UTC), occ.End)
		require.True(t, occ.AllDay)
	})

	t.Run("without end date spans a single day", func(t *testing.T) {
		occ, err := Map(&model.Event{
			EventCreate: model.EventCreate{
				Title:     "יום הולדת",
				EventType: model.EventTypeFullDay,
				StartDate: date(2024, time.January, 10),
			},
		}, now)
		require.NoError(t, err)

		require.Equal(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), occ.Start)
		require.Equal(t, time.Date(2024, time.January, 10, 23, 59, 59, 0, time.UTC), occ.End)
		require.True(t, occ.AllDay)
	})
}

func TestMapTimeSpecific(t *testing.T) {
	now := date(2024, time.January, 1)
	start := date(2024, time.March, 5)

	cases := []struct {
		name      string
		event     model.EventCreate
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name: "default duration when no end is given",
			event: model.EventCreate{
				EventType: model.EventTypeTimeSpecific,
				StartDate: start,
				StartTime: "14:00",
			},
			wantStart: time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.March, 5, 15, 0, 0, 0, time.UTC),
		},
		{
			name: "end time on the start day",
			event: model.EventCreate{
				EventType: model.EventTypeTimeSpecific,
				StartDate: start,
				StartTime: "14:00",
				EndTime:   "16:30",
			},
			wantStart: time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.March, 5, 16, 30, 0, 0, time.UTC),
		},
		{
			name: "end date with end time",
			event: model.EventCreate{
				EventType: model.EventTypeTimeSpecific,
				StartDate: start,
				StartTime: "14:00",
				EndDate:   datePtr(2024, time.March, 6),
				EndTime:   "10:00",
			},
			wantStart: time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.March, 6, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "end date without end time runs to its end of day",
			event: model.EventCreate{
				EventType: model.EventTypeTimeSpecific,
				StartDate: start,
				StartTime: "14:00",
				EndDate:   datePtr(2024, time.March, 6),
			},
			wantStart: time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.March, 6, 23, 59, 59, 0, time.UTC),
		},
		{
			name: "malformed start time falls back to midnight",
			event: model.EventCreate{
				EventType: model.EventTypeTimeSpecific,
				StartDate: start,
				StartTime: "25:99",
			},
			wantStart: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.March, 5, 1, 0, 0, 0, time.UTC),
		},
		{
			name: "malformed end time is treated as absent",
			event: model.EventCreate{
				EventType: model.EventTypeTimeSpecific,
				StartDate: start,
				StartTime: "14:00",
				EndTime:   "later",
			},
			wantStart: time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.March, 5, 15, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			occ, err := Map(&model.Event{EventCreate: tc.event}, now)
			require.NoError(t, err)

			require.Equal(t, tc.wantStart, occ.Start)
			require.Equal(t, tc.wantEnd, occ.End)
			require.False(t, occ.AllDay)
		})
	}
}

func TestMapContinuous(t *testing.T) {
	now := time.Date(2024, time.June, 15, 11, 30, 0, 0, time.UTC)

	t.Run("with end date", func(t *testing.T) {
		occ, err := Map(&model.Event{
			EventCreate: model.EventCreate{
				EventType: model.EventTypeContinuous,
				StartDate: date(2024, time.June, 1),
				EndDate:   datePtr(2024, time.June, 20),
				Color:     "#00FF00",
			},
		}, now)
		require.NoError(t, err)

		require.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), occ.Start)
		require.Equal(t, time.Date(2024, time.June, 20, 23, 59, 59, 0, time.UTC), occ.End)
		require.True(t, occ.AllDay)
		require.Equal(t, AlertColor, occ.Color)
	})

	t.Run("open-ended stretches a year past now", func(t *testing.T) {
		occ, err := Map(&model.Event{
			EventCreate: model.EventCreate{
				EventType: model.EventTypeContinuous,
				StartDate: date(2024, time.June, 1),
			},
		}, now)
		require.NoError(t, err)

		require.Equal(t, time.Date(2025, time.June, 15, 23, 59, 59, 0, time.UTC), occ.End)
	})
}

func TestMapMissingStartDate(t *testing.T) {
	_, err := Map(&model.Event{
		EventCreate: model.EventCreate{EventType: model.EventTypeFullDay},
	}, date(2024, time.January, 1))

	require.ErrorIs(t, err, model.ErrInvalidStartDate)
}

func TestDisplayColor(t *testing.T) {
	require.Equal(t, AlertColor, DisplayColor(&model.Event{
		EventCreate: model.EventCreate{EventType: model.EventTypeContinuous, Color: "#00FF00"},
	}))
	require.Equal(t, "#00FF00", DisplayColor(&model.Event{
		EventCreate: model.EventCreate{EventType: model.EventTypeFullDay, Color: "#00FF00"},
	}))
	require.Equal(t, DefaultColor, DisplayColor(&model.Event{
		EventCreate: model.EventCreate{EventType: model.EventTypeTimeSpecific},
	}))
}

func TestParseClock(t *testing.T) {
	d, err := ParseClock("14:30")
	require.NoError(t, err)
	require.Equal(t, 14*time.Hour+30*time.Minute, d)

	_, err = ParseClock("24:00")
	require.Error(t, err)

	_, err = ParseClock("noonish")
	require.Error(t, err)
}
