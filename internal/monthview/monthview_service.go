package monthview

import (
	"context"
	"time"

	"github.com/k1slee/worktime-tracking/internal/calendar"
	"github.com/k1slee/worktime-tracking/internal/daycode"
	"github.com/k1slee/worktime-tracking/internal/employee"
	"github.com/k1slee/worktime-tracking/internal/timesheet"
	timesheeterrors "github.com/k1slee/worktime-tracking/internal/timesheet/errors"

	"go.uber.org/zap"
)

type Service interface {
	BuildMonth(ctx context.Context, year, month int, filter Filter, scope Scope) (MonthView, error)
}

type service struct {
	timesheetRepo timesheet.Repository
	employeeRepo  employee.Repository
	calendarSvc   calendar.Service
	logger        *zap.Logger
}

func NewService(
	timesheetRepo timesheet.Repository,
	employeeRepo employee.Repository,
	calendarSvc calendar.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("monthview.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("monthview.service")
	}
	return &service{
		timesheetRepo: timesheetRepo,
		employeeRepo:  employeeRepo,
		calendarSvc:   calendarSvc,
		logger:        l,
	}
}

// BuildMonth reconciles stored records with calendar defaults for one
// month and employee set. It is a pure read: nothing is persisted, and
// aggregation degrades gracefully on unparseable stored values instead
// of failing the whole report.
func (s *service) BuildMonth(ctx context.Context, year, month int, filter Filter, scope Scope) (MonthView, error) {
	if month < 1 || month > 12 || year < 1 {
		return MonthView{}, timesheeterrors.ErrInvalidMonth
	}

	masterID := scope.actorID
	if scope.SeesAllMasters() {
		masterID = filter.MasterID
	}

	employees, err := s.employeeRepo.FindActive(ctx, masterID, filter.DepartmentID)
	if err != nil {
		s.logger.Error("month view employee lookup failed", zap.Error(err))
		return MonthView{}, err
	}

	view := MonthView{
		Year:       year,
		Month:      month,
		Days:       calendar.DaysInMonth(year, month),
		CanApprove: scope.CanApprove(),
	}
	if len(employees) == 0 {
		view.Rows = []EmployeeRow{}
		return view, nil
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	resolver, err := s.calendarSvc.SnapshotWindow(ctx, from, to)
	if err != nil {
		s.logger.Error("month view calendar snapshot failed", zap.Error(err))
		return MonthView{}, err
	}
	defaults := calendar.DefaultsForMonth(year, month, resolver)

	employeeIDs := make([]string, len(employees))
	for i, e := range employees {
		employeeIDs[i] = e.ID.String()
	}

	records, err := s.timesheetRepo.ListRange(ctx, from, to, employeeIDs)
	if err != nil {
		s.logger.Error("month view record lookup failed", zap.Error(err))
		return MonthView{}, err
	}

	// (employee, day-of-month) -> record
	byCell := make(map[string]map[int]*timesheet.Timesheet, len(employees))
	for i := range records {
		rec := &records[i]
		emplID := rec.EmployeeID.String()
		if byCell[emplID] == nil {
			byCell[emplID] = make(map[int]*timesheet.Timesheet)
		}
		byCell[emplID][rec.Date.Day()] = rec
	}

	view.Rows = make([]EmployeeRow, 0, len(employees))
	for _, e := range employees {
		view.Rows = append(view.Rows, s.buildRow(e, view.Days, from, byCell[e.ID.String()], defaults, resolver, scope))
	}
	return view, nil
}

func (s *service) buildRow(
	e employee.Employee,
	days int,
	monthStart time.Time,
	records map[int]*timesheet.Timesheet,
	defaults map[int]string,
	resolver *calendar.Resolver,
	scope Scope,
) EmployeeRow {
	row := EmployeeRow{
		EmployeeID:  e.ID.String(),
		BadgeNumber: e.BadgeNumber,
		FullName:    e.FullName,
		Position:    e.Position,
		MasterID:    e.MasterID.String(),
		Cells:       make([]Cell, 0, days),
	}
	if e.Department != nil {
		row.Department = e.Department.Name
	}

	canEditDefault := scope.CanEditEmployee(e.MasterID.String())

	var agg daycode.Aggregate
	for day := 1; day <= days; day++ {
		date := monthStart.AddDate(0, 0, day-1)
		flags := resolver.Resolve(date)

		cell := Cell{
			Day:        day,
			Weekend:    flags.Weekend,
			Holiday:    flags.Holiday,
			PreHoliday: flags.PreHoliday,
		}

		if rec, ok := records[day]; ok {
			value := rec.Value
			if value == "" {
				value = defaults[day]
			}
			cell.RecordID = rec.ID.String()
			cell.Value = value
			cell.Display = daycode.Display(value)
			cell.Status = rec.Status
			cell.Editable = rec.CanEdit() && scope.CanEditEmployee(rec.MasterID.String())
			agg = agg.ApplyDay(value, flags.Weekend)
		} else {
			value := defaults[day]
			cell.Value = value
			cell.Display = daycode.Display(value)
			cell.Status = StatusEmpty
			cell.Editable = canEditDefault
		}

		row.Cells = append(row.Cells, cell)
	}

	row.Stats = agg.Round()
	return row
}
