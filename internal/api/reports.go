package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/luach-app/luach-backend/internal/business/events"
	"github.com/luach-app/luach-backend/internal/config"
)

type dayReportResp struct {
	Date        string            `json:"date"`
	Occurrences []*occurrenceResp `json:"occurrences"`
}

func (a *Api) weeklyReportHandler(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query().Get("start")
	if v == "" {
		a.badRequestResponse(w, r, fmt.Errorf("start must be provided"))
		return
	}

	start, err := time.ParseInLocation(dateFormat, v, config.Location())
	if err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("invalid start date: %w", err))
		return
	}

	days, err := a.events.WeeklyReport(r.Context(), start)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("weekly report: %w", err))
		return
	}

	resp, _ := mapSlice(days, func(d *events.DayReport) (*dayReportResp, error) {
		occs, err := mapSlice(d.Occurrences, mapToOccurrenceResp)
		if err != nil {
			return nil, err
		}

		return &dayReportResp{
			Date:        d.Date.Format(dateFormat),
			Occurrences: occs,
		}, nil
	})

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
