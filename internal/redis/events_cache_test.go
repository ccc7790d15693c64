package redis

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/luach-app/luach-backend/internal/model"
	"github.com/stretchr/testify/require"
)

func TestCachedEventRoundTripKeepsCalendarTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)

	// A range straddling the spring DST transition: a fixed-offset round trip
	// would shift end-of-day arithmetic by an hour.
	endDate := time.Date(2024, time.March, 30, 0, 0, 0, 0, loc)
	userID := int64(3)
	event := &model.Event{
		ID:        7,
		CreatedAt: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
		Status:    model.EventStatusActive,
		EventCreate: model.EventCreate{
			Title:     "חופשה",
			Details:   "details",
			EventType: model.EventTypeFullDay,
			StartDate: time.Date(2024, time.March, 28, 0, 0, 0, 0, loc),
			EndDate:   &endDate,
			Color:     "#00FF00",
			UserID:    &userID,
		},
	}

	data, err := json.Marshal([]*cachedEvent{toCachedEvent(event)})
	require.NoError(t, err)

	var dtos []*cachedEvent
	require.NoError(t, json.Unmarshal(data, &dtos))
	require.Len(t, dtos, 1)

	got, err := dtos[0].toEvent(loc)
	require.NoError(t, err)

	require.True(t, got.StartDate.Equal(event.StartDate))
	require.Equal(t, loc, got.StartDate.Location())
	require.NotNil(t, got.EndDate)
	require.True(t, got.EndDate.Equal(endDate))
	require.Equal(t, loc, got.EndDate.Location())

	require.Equal(t, event.ID, got.ID)
	require.Equal(t, event.Status, got.Status)
	require.Equal(t, event.Title, got.Title)
	require.Equal(t, event.Details, got.Details)
	require.Equal(t, event.EventType, got.EventType)
	require.Equal(t, event.Color, got.Color)
	require.Equal(t, event.UserID, got.UserID)
	require.True(t, got.CreatedAt.Equal(event.CreatedAt))
}

func TestCachedEventRejectsCorruptDates(t *testing.T) {
	_, err := (&cachedEvent{StartDate: "not-a-date"}).toEvent(time.UTC)
	require.Error(t, err)

	bad := "later"
	_, err = (&cachedEvent{StartDate: "2024-03-28", EndDate: &bad}).toEvent(time.UTC)
	require.Error(t, err)
}
