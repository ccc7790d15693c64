package calendar

import (
	"fmt"
	"time"
)

type HolidayKind string

const (
	HolidayKindHoliday  HolidayKind = "holiday"
	HolidayKindMemorial HolidayKind = "memorial"
)

// Holiday is a fixed calendar overlay, rendered like an all-day occurrence but
// never persisted.
type Holiday struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Color       string
	Kind        HolidayKind
	Description string
}

type holidayEntry struct {
	slug        string
	title       string
	startMonth  time.Month
	startDay    int
	endMonth    time.Month
	endDay      int
	color       string
	kind        HolidayKind
	description string
}

// Approximate Gregorian dates. The Hebrew calendar is lunisolar, so the real
// dates shift year to year; replacing this table with a proper computation
// behind Holidays is the designated extension point.
var holidayEntries = []holidayEntry{
	{"independence-day", "יום העצמאות", time.May, 14, 0, 0, "#3B82F6", HolidayKindHoliday, "יום העצמאות של מדינת ישראל"},
	{"memorial-day", "יום הזיכרון", time.May, 13, 0, 0, "#6B7280", HolidayKindMemorial, "יום הזיכרון לחללי מערכות ישראל ונפגעי פעולות האיבה"},
	{"holocaust-day", "יום השואה", time.April, 27, 0, 0, "#6B7280", HolidayKindMemorial, "יום הזיכרון לשואה ולגבורה"},
	{"rosh-hashana", "ראש השנה", time.September, 25, time.September, 27, "#F59E0B", HolidayKindHoliday, "ראש השנה"},
	{"yom-kippur", "יום כיפור", time.October, 4, 0, 0, "#F59E0B", HolidayKindHoliday, "יום הכיפורים"},
	{"sukkot", "סוכות", time.October, 9, time.October, 16, "#F59E0B", HolidayKindHoliday, "חג הסוכות"},
	{"hanukkah", "חנוכה", time.December, 18, time.December, 26, "#F59E0B", HolidayKindHoliday, "חג החנוכה"},
	{"purim", "פורים", time.March, 16, 0, 0, "#F59E0B", HolidayKindHoliday, "חג הפורים"},
	{"passover", "פסח", time.April, 15, time.April, 22, "#F59E0B", HolidayKindHoliday, "חג הפסח"},
	{"shavuot", "שבועות", time.June, 4, 0, 0, "#F59E0B", HolidayKindHoliday, "חג השבועות"},
}

// Holidays returns the Israeli holidays of a given year in loc.
func Holidays(year int, loc *time.Location) []Holiday {
	res := make([]Holiday, len(holidayEntries))
	for i, e := range holidayEntries {
		start := time.Date(year, e.startMonth, e.startDay, 0, 0, 0, 0, loc)
		end := endOfDay(start)
		if e.endDay != 0 {
			end = time.Date(year, e.endMonth, e.endDay, 23, 59, 59, 0, loc)
		}

		res[i] = Holiday{
			ID:          fmt.Sprintf("%s-%d", e.slug, year),
			Title:       e.title,
			Start:       start,
			End:         end,
			AllDay:      true,
			Color:       e.color,
			Kind:        e.kind,
			Description: e.description,
		}
	}

	return res
}

// UpcomingHolidays returns holidays for the year of now and the three
// following years, matching the window the calendar views preload.
func UpcomingHolidays(now time.Time, loc *time.Location) []Holiday {
	year := now.In(loc).Year()

	var res []Holiday
	for y := year; y < year+4; y++ {
		res = append(res, Holidays(y, loc)...)
	}

	return res
}
