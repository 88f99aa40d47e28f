package calendar

import (
	"time"

	"github.com/k1slee/worktime-tracking/internal/daycode"
)

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DefaultsForMonth produces the fallback value for every day of a month,
// used wherever no explicit record exists. Priority per day:
//
//	holiday > preholiday > weekend > regular workday
//
// The ordering matters: a holiday wins over weekend-ness, and the
// preholiday check must run before the plain-weekend one since
// preholiday is already restricted to weekdays.
func DefaultsForMonth(year, month int, r *Resolver) map[int]string {
	days := DaysInMonth(year, month)
	defaults := make(map[int]string, days)

	for day := 1; day <= days; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		flags := r.Resolve(date)

		switch {
		case flags.Holiday:
			defaults[day] = daycode.DefaultDayOff
		case flags.PreHoliday:
			defaults[day] = daycode.DefaultShortDay
		case flags.Weekend:
			defaults[day] = daycode.DefaultDayOff
		default:
			defaults[day] = daycode.DefaultWorkday
		}
	}

	return defaults
}
