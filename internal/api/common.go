package api

import (
	"time"

	"github.com/luach-app/luach-backend/internal/calendar"
	"github.com/luach-app/luach-backend/internal/model"
)

const dateFormat = "2006-01-02"

type userResp struct {
	ID          int64  `json:"id,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Photo       string `json:"photo,omitempty"`
}

func mapToUserResp(user *model.User) (*userResp, error) {
	return &userResp{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Photo:       user.Photo,
	}, nil
}

type eventResp struct {
	ID        int64             `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Title     string            `json:"title"`
	Details   string            `json:"details,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	EventType model.EventType   `json:"event_type"`
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date,omitempty"`
	StartTime string            `json:"start_time,omitempty"`
	EndTime   string            `json:"end_time,omitempty"`
	Color     string            `json:"color"`
	Status    model.EventStatus `json:"status"`
	UserID    *int64            `json:"user_id,omitempty"`
}

func mapToEventResp(e *model.Event) (*eventResp, error) {
	endDate := ""
	if e.EndDate != nil {
		endDate = e.EndDate.Format(dateFormat)
	}

	return &eventResp{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		Title:     e.Title,
		Details:   e.Details,
		Notes:     e.Notes,
		EventType: e.EventType,
		StartDate: e.StartDate.Format(dateFormat),
		EndDate:   endDate,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Color:     calendar.DisplayColor(e),
		Status:    e.Status,
		UserID:    e.UserID,
	}, nil
}

type occurrenceResp struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	Start     time.Time         `json:"start"`
	End       time.Time         `json:"end"`
	AllDay    bool              `json:"all_day"`
	Color     string            `json:"color"`
	EventType model.EventType   `json:"event_type"`
	Details   string            `json:"details,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	Status    model.EventStatus `json:"status"`
}

func mapToOccurrenceResp(occ *calendar.Occurrence) (*occurrenceResp, error) {
	return &occurrenceResp{
		ID:        occ.EventID,
		Title:     occ.Title,
		Start:     occ.Start,
		End:       occ.End,
		AllDay:    occ.AllDay,
		Color:     occ.Color,
		EventType: occ.EventType,
		Details:   occ.Details,
		Notes:     occ.Notes,
		Status:    occ.Status,
	}, nil
}

type holidayResp struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Start       time.Time            `json:"start"`
	End         time.Time            `json:"end"`
	AllDay      bool                 `json:"all_day"`
	Color       string               `json:"color"`
	Kind        calendar.HolidayKind `json:"kind"`
	Description string               `json:"description,omitempty"`
}

func mapToHolidayResp(h calendar.Holiday) (*holidayResp, error) {
	return &holidayResp{
		ID:          h.ID,
		Title:       h.Title,
		Start:       h.Start,
		End:         h.End,
		AllDay:      h.AllDay,
		Color:       h.Color,
		Kind:        h.Kind,
		Description: h.Description,
	}, nil
}
