package daycode_test

import (
	"testing"

	"github.com/k1slee/worktime-tracking/internal/daycode"

	"github.com/stretchr/testify/assert"
)

func TestParse_PlainHours(t *testing.T) {
	t.Run("accepts 1 through 24", func(t *testing.T) {
		for _, v := range []string{"1", "8", "12", "24"} {
			code, err := daycode.Parse(v)
			assert.NoError(t, err, v)
			assert.Equal(t, daycode.KindHours, code.Kind)
		}
	})

	t.Run("rejects out of range", func(t *testing.T) {
		for _, v := range []string{"0", "25", "100"} {
			_, err := daycode.Parse(v)
			assert.Error(t, err, v)
		}
	})

	t.Run("boundary 24 valid 25 invalid", func(t *testing.T) {
		code, err := daycode.Parse("24")
		assert.NoError(t, err)
		assert.Equal(t, 24.0, code.Entry.Hours)

		_, err = daycode.Parse("25")
		assert.Error(t, err)
	})
}

func TestParse_ShiftTokens(t *testing.T) {
	code, err := daycode.Parse("9/2")
	assert.NoError(t, err)
	assert.Equal(t, daycode.KindHours, code.Kind)
	assert.Equal(t, 9.0, code.Entry.Hours)
	assert.Equal(t, 6.5, code.Entry.Evening)
	assert.Equal(t, 1.0, code.Entry.Overtime)

	code, err = daycode.Parse("8/3")
	assert.NoError(t, err)
	assert.Equal(t, 8.0, code.Entry.Night)

	_, err = daycode.Parse("12/2")
	assert.Error(t, err, "unknown shift token")
}

func TestParse_DecimalHours(t *testing.T) {
	code, err := daycode.Parse("3,5")
	assert.NoError(t, err)
	assert.Equal(t, 3.5, code.Entry.Hours)

	code, err = daycode.Parse("7.25")
	assert.NoError(t, err)
	assert.Equal(t, 7.25, code.Entry.Hours)

	_, err = daycode.Parse("-1,5")
	assert.Error(t, err)

	_, err = daycode.Parse("24,5")
	assert.Error(t, err)
}

func TestParse_CategoryCodes(t *testing.T) {
	for _, v := range []string{"В", "К", "О", "Б", "Р", "ОЖ", "М", "Т", "Н", "ОС", "П", "ЦП", "А", "Ч"} {
		code, err := daycode.Parse(v)
		assert.NoError(t, err, v)
		assert.Equal(t, daycode.KindCategory, code.Kind, v)
	}

	_, err := daycode.Parse("Х")
	assert.Error(t, err)

	_, err = daycode.Parse("")
	assert.Error(t, err)
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "8 ч", daycode.Display("8"))
	assert.Equal(t, "В", daycode.Display("В"))
	assert.Equal(t, "7/2", daycode.Display("7/2"))
}

func TestAggregate_HourTokens(t *testing.T) {
	var agg daycode.Aggregate

	agg = agg.ApplyDay("8", false)
	agg = agg.ApplyDay("9/2", false)
	agg = agg.ApplyDay("8/3", false)

	assert.Equal(t, 25.0, agg.TotalHours)
	assert.Equal(t, 6.5, agg.EveningHours)
	assert.Equal(t, 8.0, agg.NightHours)
	assert.Equal(t, 1.0, agg.OvertimeHours)
	assert.Equal(t, 3, agg.AttendanceDays)
	assert.Equal(t, 0.0, agg.WeekendHours)
}

func TestAggregate_WeekendHours(t *testing.T) {
	var agg daycode.Aggregate

	agg = agg.ApplyDay("8", true)
	agg = agg.ApplyDay("В", true)

	assert.Equal(t, 8.0, agg.TotalHours)
	assert.Equal(t, 8.0, agg.WeekendHours)
	// weekend code itself contributes no hours and no attendance
	assert.Equal(t, 1, agg.AttendanceDays)
}

func TestAggregate_CategoryBuckets(t *testing.T) {
	var agg daycode.Aggregate

	agg = agg.ApplyDay("О", false)
	agg = agg.ApplyDay("М", false)
	agg = agg.ApplyDay("Б", false)
	agg = agg.ApplyDay("ЦП", false)
	agg = agg.ApplyDay("ОС", false)
	agg = agg.ApplyDay("А", false)
	agg = agg.ApplyDay("П", false)
	agg = agg.ApplyDay("Т", false)
	agg = agg.ApplyDay("Ч", false)
	agg = agg.ApplyDay("К", false)

	assert.Equal(t, 2, agg.VacationDays)
	assert.Equal(t, 1, agg.IllnessDays)
	assert.Equal(t, 1, agg.DowntimeDays)
	assert.Equal(t, 1, agg.OtherAbsence)
	assert.Equal(t, 1, agg.AdminPermission)
	assert.Equal(t, 2, agg.AbsenceDays)
	assert.Equal(t, 2, agg.AttendanceDays, "Ч and К count as attendance")
	assert.Equal(t, 0.0, agg.TotalHours)
}

func TestAggregate_SkipsGarbage(t *testing.T) {
	var agg daycode.Aggregate

	agg = agg.ApplyDay("???", false)
	agg = agg.ApplyDay("", false)

	assert.Equal(t, daycode.Aggregate{}, agg)
}

func TestAggregate_LenientNumericFallback(t *testing.T) {
	var agg daycode.Aggregate

	// stored before range validation existed; still summed
	agg = agg.ApplyDay("26,5", false)

	assert.Equal(t, 26.5, agg.TotalHours)
	assert.Equal(t, 1, agg.AttendanceDays)
}

func TestAggregate_Round(t *testing.T) {
	var agg daycode.Aggregate
	agg = agg.ApplyDay("3,33", false)
	agg = agg.ApplyDay("3,33", false)

	rounded := agg.Round()
	assert.Equal(t, 6.7, rounded.TotalHours)
}
