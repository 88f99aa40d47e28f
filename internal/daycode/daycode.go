// Package daycode defines the vocabulary of per-day timesheet values:
// hour tokens (plain hour counts, split-shift notations) and category
// codes (vacation, sick leave and the like), together with the single
// lookup table that drives monthly statistics.
package daycode

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/k1slee/worktime-tracking/internal/shared/apperror"
)

// Category codes, as printed in the timesheet grid.
const (
	CodeWeekend         = "В"  // выходной
	CodeBusinessTrip    = "К"  // командировка
	CodeMainLeave       = "О"  // основной отпуск
	CodeSickLeave       = "Б"  // больничный
	CodeChildCare       = "Р"  // отпуск по уходу за ребенком
	CodeChildCareUnpaid = "ОЖ" // отпуск по уходу за ребенком (неоплачиваемый)
	CodeStudyLeave      = "М"  // учебный отпуск
	CodeUnexplained     = "Т"  // неявка по невыясненной причине
	CodeNightHours      = "Н"  // ночные часы
	CodeUnpaidLeave     = "ОС" // отпуск без содержания
	CodeTruancy         = "П"  // прогул
	CodeShiftDowntime   = "ЦП" // целосменный простой
	CodeAdminPermission = "А"  // административное разрешение
	CodeWorked          = "Ч"  // часы работы
)

// Defaults emitted by the calendar generator.
const (
	DefaultWorkday  = "8"
	DefaultShortDay = "7"
	DefaultDayOff   = CodeWeekend
)

const maxDayHours = 24

// Bucket is the statistical bucket a category code contributes to.
// A code maps to at most one bucket.
type Bucket int

const (
	BucketNone Bucket = iota
	BucketAttendance
	BucketDowntime
	BucketVacation
	BucketIllness
	BucketOtherAbsence
	BucketAdminPermission
	BucketAbsence
)

// Kind discriminates the two families of day values.
type Kind int

const (
	KindHours Kind = iota
	KindCategory
)

// Entry carries every statistical contribution of a known token or code.
type Entry struct {
	Hours    float64
	Evening  float64
	Night    float64
	Overtime float64
	Bucket   Bucket
	Label    string
}

// shiftTable enumerates the recognized split-shift hour tokens.
// "N/2" is an evening shift (fixed 6.5 evening hours, overtime past the
// 8-hour norm), "N/3" a night shift (the whole shift counts as night).
var shiftTable = map[string]Entry{
	"7/2":  {Hours: 7, Evening: 6.5, Label: "вечерняя смена 7ч"},
	"8/2":  {Hours: 8, Evening: 6.5, Label: "вечерняя смена 8ч"},
	"9/2":  {Hours: 9, Evening: 6.5, Overtime: 1, Label: "вечерняя смена 9ч"},
	"10/2": {Hours: 10, Evening: 6.5, Overtime: 2, Label: "вечерняя смена 10ч"},
	"7/3":  {Hours: 7, Night: 7, Label: "ночная смена 7ч"},
	"8/3":  {Hours: 8, Night: 8, Label: "ночная смена 8ч"},
}

// categoryTable maps every category code to its bucket.
var categoryTable = map[string]Entry{
	CodeWeekend:         {Bucket: BucketNone, Label: "Выходной"},
	CodeBusinessTrip:    {Bucket: BucketAttendance, Label: "Командировка"},
	CodeMainLeave:       {Bucket: BucketVacation, Label: "Основной отпуск"},
	CodeSickLeave:       {Bucket: BucketIllness, Label: "Больничный"},
	CodeChildCare:       {Bucket: BucketOtherAbsence, Label: "Отпуск по уходу за ребенком"},
	CodeChildCareUnpaid: {Bucket: BucketOtherAbsence, Label: "Отпуск по уходу за ребенком (неоплачиваемый)"},
	CodeStudyLeave:      {Bucket: BucketVacation, Label: "Учебный отпуск"},
	CodeUnexplained:     {Bucket: BucketAbsence, Label: "Неявка по невыясненной причине"},
	CodeNightHours:      {Bucket: BucketAttendance, Label: "Ночные часы"},
	CodeUnpaidLeave:     {Bucket: BucketOtherAbsence, Label: "Отпуск без содержания"},
	CodeTruancy:         {Bucket: BucketAbsence, Label: "Прогул"},
	CodeShiftDowntime:   {Bucket: BucketDowntime, Label: "Целосменный простой"},
	CodeAdminPermission: {Bucket: BucketAdminPermission, Label: "Административное разрешение"},
	CodeWorked:          {Bucket: BucketAttendance, Label: "Часы работы"},
}

// DayCode is a parsed timesheet value.
type DayCode struct {
	Raw   string
	Kind  Kind
	Entry Entry
}

var ErrInvalidValue = apperror.New(
	apperror.CodeInvalidInput,
	"значение должно быть числом часов от 1 до 24, сменным обозначением (7/2, 8/3, ...) или условным кодом",
	http.StatusBadRequest,
)

// Parse is the single canonical DayCode validator. Every entry point
// (single edits, bulk edits, month generation) must go through it.
//
// Accepted grammar:
//  1. a plain integer in [1,24];
//  2. an enumerated split-shift token from shiftTable;
//  3. a positive decimal (comma or dot separator) not exceeding 24;
//  4. an enumerated category code.
func Parse(raw string) (DayCode, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return DayCode{}, ErrInvalidValue
	}

	if isDigits(value) {
		hours, err := strconv.Atoi(value)
		if err != nil || hours < 1 || hours > maxDayHours {
			return DayCode{}, ErrInvalidValue
		}
		return DayCode{Raw: value, Kind: KindHours, Entry: Entry{Hours: float64(hours)}}, nil
	}

	if entry, ok := shiftTable[value]; ok {
		return DayCode{Raw: value, Kind: KindHours, Entry: entry}, nil
	}

	if hours, ok := parseHours(value); ok {
		if hours <= 0 || hours > maxDayHours {
			return DayCode{}, ErrInvalidValue
		}
		return DayCode{Raw: value, Kind: KindHours, Entry: Entry{Hours: hours}}, nil
	}

	if entry, ok := categoryTable[value]; ok {
		return DayCode{Raw: value, Kind: KindCategory, Entry: entry}, nil
	}

	return DayCode{}, ErrInvalidValue
}

// IsValid reports whether raw is an acceptable timesheet value.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// Label returns the human-readable description of a category code,
// or the empty string for hour tokens and unknown values.
func Label(raw string) string {
	if entry, ok := categoryTable[strings.TrimSpace(raw)]; ok {
		return entry.Label
	}
	return ""
}

// Display renders a stored value for the grid: plain hour counts get the
// "ч" suffix, everything else is shown as is.
func Display(raw string) string {
	value := strings.TrimSpace(raw)
	if isDigits(value) {
		return value + " ч"
	}
	return value
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseHours handles free-form numeric values with a comma or dot
// decimal separator ("3,5" → 3.5).
func parseHours(s string) (float64, bool) {
	normalized := strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
