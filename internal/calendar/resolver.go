package calendar

import "time"

// DayFlags is the resolver's verdict for a single date. The three flags
// are independent: a holiday falling on a Saturday is both Holiday and
// Weekend.
type DayFlags struct {
	Holiday    bool
	PreHoliday bool
	Weekend    bool
}

// Resolver answers holiday/preholiday/weekend questions against a
// registry snapshot. Callers fetch the window once (month plus one
// trailing day, so the last day's preholiday check works) and resolve
// locally instead of hitting storage per date.
type Resolver struct {
	kinds map[string]string // "2006-01-02" -> kind
}

func NewResolver(entries []Holiday) *Resolver {
	kinds := make(map[string]string, len(entries))
	for _, e := range entries {
		kinds[e.Date.Format("2006-01-02")] = e.Kind
	}
	return &Resolver{kinds: kinds}
}

// Resolve is a pure function over the snapshot.
//
// PreHoliday requires a Mon-Fri date whose following calendar date is a
// registered holiday; explicitly imported preholiday entries are honored
// under the same weekday restriction.
func (r *Resolver) Resolve(d time.Time) DayFlags {
	wd := d.Weekday()
	flags := DayFlags{
		Weekend: wd == time.Saturday || wd == time.Sunday,
		Holiday: r.kinds[d.Format("2006-01-02")] == KindHoliday,
	}

	if wd != time.Saturday && wd != time.Sunday {
		next := d.AddDate(0, 0, 1)
		if r.kinds[next.Format("2006-01-02")] == KindHoliday ||
			r.kinds[d.Format("2006-01-02")] == KindPreHoliday {
			flags.PreHoliday = true
		}
	}

	return flags
}
