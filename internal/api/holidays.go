package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/luach-app/luach-backend/internal/calendar"
	"github.com/luach-app/luach-backend/internal/config"
)

func (a *Api) getHolidaysHandler(w http.ResponseWriter, r *http.Request) {
	var holidays []calendar.Holiday

	if v := r.URL.Query().Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("invalid year %v", v))
			return
		}
		holidays = calendar.Holidays(year, config.Location())
	} else {
		holidays = calendar.UpcomingHolidays(a.clock.Now(), config.Location())
	}

	resp, _ := mapSlice(holidays, mapToHolidayResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
