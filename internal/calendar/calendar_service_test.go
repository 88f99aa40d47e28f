package calendar_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/k1slee/worktime-tracking/internal/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

type fakeHolidayRepository struct {
	listRangeFn   func(ctx context.Context, from, to time.Time) ([]calendar.Holiday, error)
	getOrCreateFn func(ctx context.Context, date time.Time, kind, name string) (bool, error)
	created       []time.Time
}

func (f *fakeHolidayRepository) ListRange(ctx context.Context, from, to time.Time) ([]calendar.Holiday, error) {
	if f.listRangeFn != nil {
		return f.listRangeFn(ctx, from, to)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) GetOrCreate(ctx context.Context, date time.Time, kind, name string) (bool, error) {
	if f.getOrCreateFn != nil {
		return f.getOrCreateFn(ctx, date, kind, name)
	}
	f.created = append(f.created, date)
	return true, nil
}

func buildWorkbook(t *testing.T, cells [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for r, row := range cells {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			assert.NoError(t, err)
			assert.NoError(t, f.SetCellStr("Sheet1", cell, v))
		}
	}

	var buf bytes.Buffer
	assert.NoError(t, f.Write(&buf))
	return &buf
}

func TestCalendarService_ImportWorkbook(t *testing.T) {
	ctx := context.Background()

	t.Run("imports date cells and skips the rest", func(t *testing.T) {
		repo := &fakeHolidayRepository{}
		svc := calendar.NewService(repo)

		buf := buildWorkbook(t, [][]string{
			{"Праздники 2024", ""},
			{"2024-01-01", "2024-01-02"},
			{"08.03.2024", "not a date"},
		})

		res, err := svc.ImportWorkbook(ctx, buf, calendar.KindHoliday)
		assert.NoError(t, err)
		assert.Equal(t, 3, res.Imported)
		assert.Equal(t, 2, res.Skipped, "header and garbage cells")
		assert.Len(t, repo.created, 3)
	})

	t.Run("existing dates are not duplicated", func(t *testing.T) {
		repo := &fakeHolidayRepository{
			getOrCreateFn: func(ctx context.Context, date time.Time, kind, name string) (bool, error) {
				return false, nil
			},
		}
		svc := calendar.NewService(repo)

		buf := buildWorkbook(t, [][]string{{"2024-01-01"}})

		res, err := svc.ImportWorkbook(ctx, buf, calendar.KindHoliday)
		assert.NoError(t, err)
		assert.Equal(t, 0, res.Imported)
		assert.Equal(t, 1, res.Existing)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		svc := calendar.NewService(&fakeHolidayRepository{})

		_, err := svc.ImportWorkbook(ctx, bytes.NewReader(nil), "midweek")
		assert.ErrorIs(t, err, calendar.ErrInvalidKind)
	})

	t.Run("rejects non-xlsx payload", func(t *testing.T) {
		svc := calendar.NewService(&fakeHolidayRepository{})

		_, err := svc.ImportWorkbook(ctx, bytes.NewBufferString("definitely not a workbook"), calendar.KindHoliday)
		assert.Error(t, err)
	})
}

func TestCalendarService_SnapshotWindow(t *testing.T) {
	repo := &fakeHolidayRepository{
		listRangeFn: func(ctx context.Context, from, to time.Time) ([]calendar.Holiday, error) {
			return []calendar.Holiday{
				{Date: day(2024, time.May, 9), Kind: calendar.KindHoliday},
			}, nil
		},
	}
	svc := calendar.NewService(repo)

	r, err := svc.SnapshotWindow(context.Background(), day(2024, time.May, 1), day(2024, time.June, 1))
	assert.NoError(t, err)
	assert.True(t, r.Resolve(day(2024, time.May, 9)).Holiday)
	assert.True(t, r.Resolve(day(2024, time.May, 8)).PreHoliday)
}
