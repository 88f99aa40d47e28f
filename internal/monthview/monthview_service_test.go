package monthview_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/k1slee/worktime-tracking/internal/calendar"
	"github.com/k1slee/worktime-tracking/internal/employee"
	"github.com/k1slee/worktime-tracking/internal/monthview"
	"github.com/k1slee/worktime-tracking/internal/timesheet"
	timesheeterrors "github.com/k1slee/worktime-tracking/internal/timesheet/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeTimesheetRepo struct {
	timesheet.Repository
	records []timesheet.Timesheet
}

func (f *fakeTimesheetRepo) ListRange(ctx context.Context, from, to time.Time, employeeIDs []string) ([]timesheet.Timesheet, error) {
	allowed := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		allowed[id] = true
	}
	var out []timesheet.Timesheet
	for _, rec := range f.records {
		if rec.Date.Before(from) || !rec.Date.Before(to) {
			continue
		}
		if !allowed[rec.EmployeeID.String()] {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employee.Repository
	employees  []employee.Employee
	lastMaster string
	lastDept   string
}

func (f *fakeEmployeeRepo) FindActive(ctx context.Context, masterID, departmentID string) ([]employee.Employee, error) {
	f.lastMaster = masterID
	f.lastDept = departmentID
	return f.employees, nil
}

type fakeCalendarService struct {
	resolver *calendar.Resolver
}

func (f *fakeCalendarService) ListYear(ctx context.Context, year int) ([]calendar.HolidayResponse, error) {
	return nil, nil
}
func (f *fakeCalendarService) SnapshotWindow(ctx context.Context, from, to time.Time) (*calendar.Resolver, error) {
	return f.resolver, nil
}
func (f *fakeCalendarService) ImportWorkbook(ctx context.Context, src io.Reader, kind string) (calendar.ImportResultResponse, error) {
	return calendar.ImportResultResponse{}, nil
}

func record(emplID, masterID uuid.UUID, date time.Time, value, status string) timesheet.Timesheet {
	return timesheet.Timesheet{
		ID:         uuid.New(),
		Date:       date,
		EmployeeID: emplID,
		MasterID:   masterID,
		Value:      value,
		Status:     status,
	}
}

func TestBuildMonth_CalendarDefaults(t *testing.T) {
	masterID := uuid.New()
	empl := employee.Employee{ID: uuid.New(), BadgeNumber: "TAB-000001", FullName: "Иванов И.И.", MasterID: masterID}

	// May 2024: holiday on the 9th, so the 8th is a short preholiday.
	resolver := calendar.NewResolver([]calendar.Holiday{
		{Date: time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC), Kind: calendar.KindHoliday},
	})
	svc := monthview.NewService(&fakeTimesheetRepo{}, &fakeEmployeeRepo{employees: []employee.Employee{empl}}, &fakeCalendarService{resolver: resolver})

	view, err := svc.BuildMonth(context.Background(), 2024, 5, monthview.Filter{}, monthview.NewScope(masterID.String(), "master"))
	assert.NoError(t, err)
	assert.Equal(t, 31, view.Days)
	assert.Len(t, view.Rows, 1)

	row := view.Rows[0]
	assert.Len(t, row.Cells, 31)

	// 2024-05-11 is a Saturday with no record: default "В", no stats.
	sat := row.Cells[10]
	assert.Equal(t, "В", sat.Value)
	assert.True(t, sat.Weekend)
	assert.Equal(t, monthview.StatusEmpty, sat.Status)
	assert.Empty(t, sat.RecordID)

	holiday := row.Cells[8]
	assert.Equal(t, "В", holiday.Value)
	assert.True(t, holiday.Holiday)

	preholiday := row.Cells[7]
	assert.Equal(t, "7", preholiday.Value)
	assert.True(t, preholiday.PreHoliday)

	workday := row.Cells[5]
	assert.Equal(t, "8", workday.Value)
	assert.Equal(t, "8 ч", workday.Display)
	assert.True(t, workday.Editable)

	// Defaulted cells are presentation only: nothing counted.
	assert.Zero(t, row.Stats.TotalHours)
	assert.Zero(t, row.Stats.AttendanceDays)
}

func TestBuildMonth_RecordAggregation(t *testing.T) {
	masterID := uuid.New()
	empl := employee.Employee{ID: uuid.New(), FullName: "Петров", MasterID: masterID}

	repo := &fakeTimesheetRepo{records: []timesheet.Timesheet{
		// Wednesday evening shift: +9 total, +6.5 evening, +1 overtime.
		record(empl.ID, masterID, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), "9/2", timesheet.StatusDraft),
		// Saturday worked: hours land in the weekend bucket too.
		record(empl.ID, masterID, time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC), "4", timesheet.StatusDraft),
		record(empl.ID, masterID, time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC), "О", timesheet.StatusSubmitted),
	}}
	svc := monthview.NewService(repo, &fakeEmployeeRepo{employees: []employee.Employee{empl}}, &fakeCalendarService{resolver: calendar.NewResolver(nil)})

	view, err := svc.BuildMonth(context.Background(), 2024, 4, monthview.Filter{}, monthview.NewScope(masterID.String(), "master"))
	assert.NoError(t, err)

	stats := view.Rows[0].Stats
	assert.InDelta(t, 13.0, stats.TotalHours, 0.001)
	assert.InDelta(t, 4.0, stats.WeekendHours, 0.001)
	assert.InDelta(t, 6.5, stats.EveningHours, 0.001)
	assert.InDelta(t, 1.0, stats.OvertimeHours, 0.001)
	assert.Equal(t, 2, stats.AttendanceDays)
	assert.Equal(t, 1, stats.VacationDays)

	shift := view.Rows[0].Cells[2]
	assert.Equal(t, "9/2", shift.Value)
	assert.Equal(t, "draft", shift.Status)
	assert.NotEmpty(t, shift.RecordID)
}

func TestBuildMonth_UnparseableValueSkipped(t *testing.T) {
	masterID := uuid.New()
	empl := employee.Employee{ID: uuid.New(), MasterID: masterID}

	repo := &fakeTimesheetRepo{records: []timesheet.Timesheet{
		record(empl.ID, masterID, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), "??", timesheet.StatusDraft),
		record(empl.ID, masterID, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), "8", timesheet.StatusDraft),
	}}
	svc := monthview.NewService(repo, &fakeEmployeeRepo{employees: []employee.Employee{empl}}, &fakeCalendarService{resolver: calendar.NewResolver(nil)})

	view, err := svc.BuildMonth(context.Background(), 2024, 4, monthview.Filter{}, monthview.NewScope(masterID.String(), "master"))
	assert.NoError(t, err)

	stats := view.Rows[0].Stats
	assert.InDelta(t, 8.0, stats.TotalHours, 0.001)
	assert.Equal(t, 1, stats.AttendanceDays)
}

func TestBuildMonth_Editability(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	empl := employee.Employee{ID: uuid.New(), MasterID: ownerID}

	repo := &fakeTimesheetRepo{records: []timesheet.Timesheet{
		record(empl.ID, ownerID, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), "8", timesheet.StatusDraft),
		record(empl.ID, ownerID, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), "8", timesheet.StatusSubmitted),
	}}
	newService := func() monthview.Service {
		return monthview.NewService(repo, &fakeEmployeeRepo{employees: []employee.Employee{empl}}, &fakeCalendarService{resolver: calendar.NewResolver(nil)})
	}

	t.Run("owning master edits drafts only", func(t *testing.T) {
		view, err := newService().BuildMonth(context.Background(), 2024, 4, monthview.Filter{}, monthview.NewScope(ownerID.String(), "master"))
		assert.NoError(t, err)
		assert.False(t, view.CanApprove)

		cells := view.Rows[0].Cells
		assert.True(t, cells[0].Editable)
		assert.False(t, cells[1].Editable)
		assert.True(t, cells[2].Editable) // defaulted cell
	})

	t.Run("foreign master sees nothing editable", func(t *testing.T) {
		view, err := newService().BuildMonth(context.Background(), 2024, 4, monthview.Filter{}, monthview.NewScope(otherID.String(), "master"))
		assert.NoError(t, err)

		for _, cell := range view.Rows[0].Cells {
			assert.False(t, cell.Editable)
		}
	})

	t.Run("planner approves but does not edit", func(t *testing.T) {
		view, err := newService().BuildMonth(context.Background(), 2024, 4, monthview.Filter{}, monthview.NewScope(uuid.NewString(), "planner"))
		assert.NoError(t, err)
		assert.True(t, view.CanApprove)

		for _, cell := range view.Rows[0].Cells {
			assert.False(t, cell.Editable)
		}
	})

	t.Run("admin edits everything in draft", func(t *testing.T) {
		view, err := newService().BuildMonth(context.Background(), 2024, 4, monthview.Filter{}, monthview.NewScope(uuid.NewString(), "admin"))
		assert.NoError(t, err)
		assert.True(t, view.CanApprove)
		assert.True(t, view.Rows[0].Cells[0].Editable)
		assert.False(t, view.Rows[0].Cells[1].Editable)
	})

	t.Run("print form is fully read-only", func(t *testing.T) {
		scope := monthview.NewScope(ownerID.String(), "master").ReadOnly()
		view, err := newService().BuildMonth(context.Background(), 2024, 4, monthview.Filter{}, scope)
		assert.NoError(t, err)
		assert.False(t, view.CanApprove)

		for _, cell := range view.Rows[0].Cells {
			assert.False(t, cell.Editable)
		}
	})
}

func TestBuildMonth_MasterPinnedToOwnEmployees(t *testing.T) {
	masterID := uuid.New()
	employees := &fakeEmployeeRepo{}
	svc := monthview.NewService(&fakeTimesheetRepo{}, employees, &fakeCalendarService{resolver: calendar.NewResolver(nil)})

	t.Run("master filter ignored for masters", func(t *testing.T) {
		_, err := svc.BuildMonth(context.Background(), 2024, 4,
			monthview.Filter{MasterID: uuid.NewString()},
			monthview.NewScope(masterID.String(), "master"))
		assert.NoError(t, err)
		assert.Equal(t, masterID.String(), employees.lastMaster)
	})

	t.Run("planner filter honored", func(t *testing.T) {
		wanted := uuid.NewString()
		_, err := svc.BuildMonth(context.Background(), 2024, 4,
			monthview.Filter{MasterID: wanted, DepartmentID: "dept-1"},
			monthview.NewScope(uuid.NewString(), "planner"))
		assert.NoError(t, err)
		assert.Equal(t, wanted, employees.lastMaster)
		assert.Equal(t, "dept-1", employees.lastDept)
	})
}

func TestBuildMonth_InvalidMonth(t *testing.T) {
	svc := monthview.NewService(&fakeTimesheetRepo{}, &fakeEmployeeRepo{}, &fakeCalendarService{resolver: calendar.NewResolver(nil)})

	_, err := svc.BuildMonth(context.Background(), 2024, 13, monthview.Filter{}, monthview.NewScope(uuid.NewString(), "planner"))
	assert.ErrorIs(t, err, timesheeterrors.ErrInvalidMonth)
}
