package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/luach-app/luach-backend/internal/config"
	"github.com/luach-app/luach-backend/internal/model"
	"github.com/luach-app/luach-backend/internal/pkg/validator"
)

type eventRequest struct {
	Title     string          `json:"title"`
	Details   string          `json:"details"`
	Notes     string          `json:"notes"`
	EventType model.EventType `json:"event_type"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
	Color     string          `json:"color"`
}

// parseEventCreate turns the raw request into a typed EventCreate. Date
// parsing fails loudly as field errors; nothing is silently defaulted.
func parseEventCreate(req *eventRequest, userID int64) (*model.EventCreate, error) {
	v := validator.New()

	info := &model.EventCreate{
		Title:     req.Title,
		Details:   req.Details,
		Notes:     req.Notes,
		EventType: req.EventType,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Color:     req.Color,
		UserID:    &userID,
	}

	if req.StartDate == "" {
		v.AddError("start_date", "start date must be provided")
	} else {
		start, err := time.ParseInLocation(dateFormat, req.StartDate, config.Location())
		if err != nil {
			v.AddError("start_date", "must be a YYYY-MM-DD date")
		} else {
			info.StartDate = start
		}
	}

	if req.EndDate != "" {
		end, err := time.ParseInLocation(dateFormat, req.EndDate, config.Location())
		if err != nil {
			v.AddError("end_date", "must be a YYYY-MM-DD date")
		} else {
			info.EndDate = &end
		}
	}

	if !v.Valid() {
		return nil, &model.ValidationError{Fields: v.Errors}
	}

	return info, nil
}

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	req := &eventRequest{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	info, err := parseEventCreate(req, userID)
	if err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	event, err := a.events.CreateEvent(r.Context(), info)
	if err != nil {
		a.eventErrorResponse(w, r, fmt.Errorf("create event: %w", err))
		return
	}

	resp, _ := mapToEventResp(event)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := a.events.GetEvents(r.Context())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get events: %w", err))
		return
	}

	resp, _ := mapSlice(events, mapToEventResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getCalendarHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseCalendarQuery(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	occs, err := a.events.GetCalendar(r.Context(), *filter)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get calendar: %w", err))
		return
	}

	resp, _ := mapSlice(occs, mapToOccurrenceResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := a.eventIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	event, err := a.events.GetEventByID(r.Context(), id)
	if err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToEventResp(event)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	id, err := a.eventIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	req := &eventRequest{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	info, err := parseEventCreate(req, userID)
	if err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	event, err := a.events.UpdateEvent(r.Context(), id, info)
	if err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToEventResp(event)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := a.eventIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	if err := a.events.DeleteEvent(r.Context(), id); err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) archiveEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := a.eventIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	event, err := a.events.ArchiveEvent(r.Context(), id)
	if err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToEventResp(event)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) unarchiveEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := a.eventIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	event, err := a.events.UnarchiveEvent(r.Context(), id)
	if err != nil {
		a.eventErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToEventResp(event)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) eventIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
}

// eventErrorResponse maps service failures onto the API error taxonomy.
func (a *Api) eventErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		a.failedValidationResponse(w, r, validationErr.Fields)
	case errors.Is(err, model.ErrNoRecord):
		a.notFoundResponse(w, r)
	default:
		a.serverErrorResponse(w, r, err)
	}
}

func parseCalendarQuery(r *http.Request) (*model.EventsFilter, error) {
	res := &model.EventsFilter{
		IncludeContinuous: true,
	}

	if v := r.URL.Query().Get("from"); v != "" {
		from, err := time.ParseInLocation(dateFormat, v, config.Location())
		if err != nil {
			return nil, fmt.Errorf("invalid from date: %w", err)
		}
		res.From = from
	}

	if v := r.URL.Query().Get("to"); v != "" {
		to, err := time.ParseInLocation(dateFormat, v, config.Location())
		if err != nil {
			return nil, fmt.Errorf("invalid to date: %w", err)
		}
		res.To = to
	}

	if v := r.URL.Query().Get("include_archived"); v != "" {
		includeArchived, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid include_archived value %v", v)
		}
		res.IncludeArchived = includeArchived
	}

	if v := r.URL.Query().Get("include_continuous"); v != "" {
		includeContinuous, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid include_continuous value %v", v)
		}
		res.IncludeContinuous = includeContinuous
	}

	return res, nil
}
