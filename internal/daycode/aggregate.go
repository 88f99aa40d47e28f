package daycode

import "math"

// Aggregate holds the per-employee monthly statistics. It is a value
// type: ApplyDay returns an updated copy, so callers fold it over the
// days of a month without sharing mutable state.
type Aggregate struct {
	TotalHours    float64 `json:"total_hours"`
	WeekendHours  float64 `json:"weekend_hours"`
	EveningHours  float64 `json:"evening_hours"`
	NightHours    float64 `json:"night_hours"`
	OvertimeHours float64 `json:"overtime_hours"`

	AttendanceDays  int `json:"attendance_days"`
	DowntimeDays    int `json:"downtime_days"`
	VacationDays    int `json:"vacation_days"`
	IllnessDays     int `json:"illness_days"`
	OtherAbsence    int `json:"other_absence_days"`
	AdminPermission int `json:"admin_permission_days"`
	AbsenceDays     int `json:"absence_days"`
}

// ApplyDay folds one day's stored value into the aggregate. Aggregation
// must never fail: values that parse as neither a token nor a code fall
// back to a lenient numeric read, and anything still unrecognized is
// skipped so report generation stays available.
func (a Aggregate) ApplyDay(raw string, isWeekend bool) Aggregate {
	code, err := Parse(raw)
	if err != nil {
		// Legacy rows may predate the canonical validator; a positive
		// numeric value still contributes its hours.
		if hours, ok := parseHours(raw); ok && hours > 0 {
			a.TotalHours += hours
			if isWeekend {
				a.WeekendHours += hours
			}
			a.AttendanceDays++
		}
		return a
	}

	switch code.Kind {
	case KindHours:
		a.TotalHours += code.Entry.Hours
		if isWeekend {
			a.WeekendHours += code.Entry.Hours
		}
		a.EveningHours += code.Entry.Evening
		a.NightHours += code.Entry.Night
		a.OvertimeHours += code.Entry.Overtime
		a.AttendanceDays++
	case KindCategory:
		switch code.Entry.Bucket {
		case BucketAttendance:
			a.AttendanceDays++
		case BucketDowntime:
			a.DowntimeDays++
		case BucketVacation:
			a.VacationDays++
		case BucketIllness:
			a.IllnessDays++
		case BucketOtherAbsence:
			a.OtherAbsence++
		case BucketAdminPermission:
			a.AdminPermission++
		case BucketAbsence:
			a.AbsenceDays++
		}
	}
	return a
}

// Round returns the aggregate with all hour totals rounded to one
// decimal place, the precision the output views promise.
func (a Aggregate) Round() Aggregate {
	a.TotalHours = round1(a.TotalHours)
	a.WeekendHours = round1(a.WeekendHours)
	a.EveningHours = round1(a.EveningHours)
	a.NightHours = round1(a.NightHours)
	a.OvertimeHours = round1(a.OvertimeHours)
	return a
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
