package timesheet_test

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/k1slee/worktime-tracking/internal/calendar"
	"github.com/k1slee/worktime-tracking/internal/daycode"
	"github.com/k1slee/worktime-tracking/internal/employee"
	"github.com/k1slee/worktime-tracking/internal/messaging/kafka"
	"github.com/k1slee/worktime-tracking/internal/timesheet"
	timesheeterrors "github.com/k1slee/worktime-tracking/internal/timesheet/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// =========================================
// Fakes
// =========================================

type fakeRepository struct {
	records map[string]*timesheet.Timesheet // id -> record
	byCell  map[string]string               // employee|date -> id
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		records: make(map[string]*timesheet.Timesheet),
		byCell:  make(map[string]string),
	}
}

func cellKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeRepository) WithTx(tx *sql.Tx) timesheet.Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, t *timesheet.Timesheet) error {
	key := cellKey(t.EmployeeID.String(), t.Date)
	if _, exists := f.byCell[key]; exists {
		return errors23505()
	}
	cp := *t
	f.records[t.ID.String()] = &cp
	f.byCell[key] = t.ID.String()
	return nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*timesheet.Timesheet, error) {
	t, ok := f.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeRepository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timesheet.Timesheet, error) {
	id, ok := f.byCell[cellKey(employeeID, date)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f.FindByID(ctx, id)
}

func (f *fakeRepository) ListRange(ctx context.Context, from, to time.Time, employeeIDs []string) ([]timesheet.Timesheet, error) {
	allowed := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		allowed[id] = true
	}
	var out []timesheet.Timesheet
	for _, t := range f.records {
		if t.Date.Before(from) || !t.Date.Before(to) {
			continue
		}
		if len(employeeIDs) > 0 && !allowed[t.EmployeeID.String()] {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeRepository) ListForExport(ctx context.Context, from, to time.Time, masterID, departmentID, status string) ([]timesheet.Timesheet, error) {
	var out []timesheet.Timesheet
	for _, t := range f.records {
		if t.Date.Before(from) || !t.Date.Before(to) {
			continue
		}
		if masterID != "" && t.MasterID.String() != masterID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeRepository) Update(ctx context.Context, t *timesheet.Timesheet) error {
	cp := *t
	f.records[t.ID.String()] = &cp
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id string) error {
	t, ok := f.records[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.byCell, cellKey(t.EmployeeID.String(), t.Date))
	delete(f.records, id)
	return nil
}

func errors23505() error {
	return errDuplicate{}
}

type errDuplicate struct{}

func (errDuplicate) Error() string {
	return `duplicate key value violates unique constraint "uq_timesheets_date_employee"`
}

type fakeEmployeeRepo struct {
	employee.Repository
	options []employee.Employee
}

func (f *fakeEmployeeRepo) FindOptionsByMaster(ctx context.Context, masterID string) ([]employee.Employee, error) {
	return f.options, nil
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

type fakeUserDirectory struct {
	names map[uuid.UUID]string
}

func (f *fakeUserDirectory) FindFullNamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		if name, ok := f.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error               { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, r string) error   { return nil }

// =========================================
// Helpers
// =========================================

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeRepository
	outbox  *fakeOutbox
	users   *fakeUserDirectory
	service timesheet.Service
}

func setupService(t *testing.T) *serviceDeps {
	t.Helper()
	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	repo := newFakeRepository()
	outbox := &fakeOutbox{}
	users := &fakeUserDirectory{names: map[uuid.UUID]string{}}
	svc := timesheet.NewService(db, repo, &fakeEmployeeRepo{}, &fakeCalendarService{
		resolver: calendar.NewResolver(nil),
	}, outbox, users)

	return &serviceDeps{db: db, sqlMock: sqlMock, repo: repo, outbox: outbox, users: users, service: svc}
}

func expectTx(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

func expectRollback(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectRollback()
}

func mustCreate(t *testing.T, deps *serviceDeps, masterID, employeeID, date, value string) timesheet.TimesheetResponse {
	t.Helper()
	expectTx(deps.sqlMock)
	resp, err := deps.service.Create(context.Background(), masterID, timesheet.CreateTimesheetRequest{
		EmployeeID: employeeID,
		Date:       date,
		Value:      value,
	})
	assert.NoError(t, err)
	return resp
}

// =========================================
// TESTS
// =========================================

func TestTimesheetService_Create(t *testing.T) {
	masterID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		deps := setupService(t)

		resp := mustCreate(t, deps, masterID, employeeID, "2024-04-01", "8")

		assert.Equal(t, "draft", resp.Status)
		assert.Equal(t, "8 ч", resp.DisplayValue)
		assert.True(t, resp.CanEdit)
	})

	t.Run("invalid value rejected", func(t *testing.T) {
		deps := setupService(t)

		_, err := deps.service.Create(context.Background(), masterID, timesheet.CreateTimesheetRequest{
			EmployeeID: employeeID,
			Date:       "2024-04-01",
			Value:      "25",
		})

		assert.ErrorIs(t, err, daycode.ErrInvalidValue)
	})

	t.Run("duplicate cell maps to conflict", func(t *testing.T) {
		deps := setupService(t)

		mustCreate(t, deps, masterID, employeeID, "2024-04-01", "8")

		expectRollback(deps.sqlMock)
		_, err := deps.service.Create(context.Background(), masterID, timesheet.CreateTimesheetRequest{
			EmployeeID: employeeID,
			Date:       "2024-04-01",
			Value:      "В",
		})

		assert.ErrorIs(t, err, timesheeterrors.ErrTimesheetAlreadyExists)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		deps := setupService(t)

		_, err := deps.service.Create(context.Background(), masterID, timesheet.CreateTimesheetRequest{
			EmployeeID: employeeID,
			Date:       "01.04.2024",
			Value:      "8",
		})

		assert.ErrorIs(t, err, timesheeterrors.ErrInvalidDate)
	})
}

func TestTimesheetService_StateMachine(t *testing.T) {
	masterID := uuid.NewString()
	plannerID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("submit then approve", func(t *testing.T) {
		deps := setupService(t)
		rec := mustCreate(t, deps, masterID, employeeID, "2024-04-01", "8")

		expectTx(deps.sqlMock)
		submitted, err := deps.service.Submit(context.Background(), masterID, "master", rec.ID)
		assert.NoError(t, err)
		assert.Equal(t, "submitted", submitted.Status)
		assert.False(t, submitted.CanEdit)

		expectTx(deps.sqlMock)
		approved, err := deps.service.Approve(context.Background(), plannerID, rec.ID)
		assert.NoError(t, err)
		assert.Equal(t, "approved", approved.Status)
		assert.Equal(t, plannerID, approved.ApprovedBy)
		assert.NotEmpty(t, approved.ApprovedAt)
	})

	t.Run("direct approve from draft", func(t *testing.T) {
		deps := setupService(t)
		rec := mustCreate(t, deps, masterID, employeeID, "2024-04-01", "8")

		expectTx(deps.sqlMock)
		approved, err := deps.service.Approve(context.Background(), plannerID, rec.ID)
		assert.NoError(t, err)
		assert.Equal(t, "approved", approved.Status)
	})

	t.Run("approve twice fails with invalid state", func(t *testing.T) {
		deps := setupService(t)
		rec := mustCreate(t, deps, masterID, employeeID, "2024-04-01", "8")

		expectTx(deps.sqlMock)
		_, err := deps.service.Approve(context.Background(), plannerID, rec.ID)
		assert.NoError(t, err)

		expectRollback(deps.sqlMock)
		_, err = deps.service.Approve(context.Background(), plannerID, rec.ID)
		assert.ErrorIs(t, err, timesheeterrors.ErrInvalidStatusTransition)
	})

	t.Run("unapprove returns to editable draft", func(t *testing.T) {
		deps := setupService(t)
		rec := mustCreate(t, deps, masterID, employeeID, "2024-04-01", "8")

		expectTx(deps.sqlMock)
		_, err := deps.service.Approve(context.Background(), plannerID, rec.ID)
		assert.NoError(t, err)

		expectTx(deps.sqlMock)
		back, err := deps.service.Unapprove(context.Background(), plannerID, rec.ID)
		assert.NoError(t, err)
		assert.Equal(t, "draft", back.Status)
		assert.True(t, back.CanEdit)
		assert.Empty(t, back.ApprovedBy)
		assert.Empty(t, back.ApprovedAt)
	})

	t.Run("submit by another master forbidden", func(t *testing.T) {
		deps := setupService(t)
		rec := mustCreate(t, deps, masterID, employeeID, "2024-04-01", "8")

		expectRollback(deps.sqlMock)
		_, err := deps.service.Submit(context.Background(), uuid.NewString(), "master", rec.ID)
		assert.ErrorIs(t, err, timesheeterrors.ErrNotRecordOwner)
	})
}

func TestTimesheetService_Approve_QueuesOutboxEvent(t *testing.T) {
	masterID := uuid.NewString()
	plannerID := uuid.NewString()
	employeeID := uuid.NewString()

	deps := setupService(t)
	rec := mustCreate(t, deps, masterID, employeeID, "2024-04-01", "9/2")

	expectTx(deps.sqlMock)
	_, err := deps.service.Approve(context.Background(), plannerID, rec.ID)
	assert.NoError(t, err)

	assert.Len(t, deps.outbox.created, 1)
	event := deps.outbox.created[0]
	assert.Equal(t, "timesheet", event.AggregateType)
	assert.Equal(t, rec.ID, event.AggregateID)
	assert.Equal(t, "timesheet_approved", event.EventType)
	assert.Equal(t, "tabel.timesheet.lifecycle.v1", event.Topic)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.Contains(t, string(event.Payload), employeeID)
	assert.Contains(t, string(event.Payload), "9/2")
}

func TestTimesheetService_UpdateDelete_LockedRecords(t *testing.T) {
	masterID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("update draft ok", func(t *testing.T) {
		deps := setupService(t)
		rec := mustCreate(t, deps, masterID, employeeID, "2024-04-01", "8")

		expectTx(deps.sqlMock)
		resp, err := deps.service.Update(context.Background(), masterID, "master", rec.ID, timesheet.UpdateTimesheetRequest{Value: "7/2"})
		assert.NoError(t, err)
		assert.Equal(t, "7/2", resp.Value)
	})

	t.Run("update submitted locked", func(t *testing.T) {
		deps := setupService(t)
		rec := mustCreate(t, deps, masterID, employeeID, "2024-04-01", "8")

		expectTx(deps.sqlMock)
		_, err := deps.service.Submit(context.Background(), masterID, "master", rec.ID)
		assert.NoError(t, err)

		expectRollback(deps.sqlMock)
		_, err = deps.service.Update(context.Background(), masterID, "master", rec.ID, timesheet.UpdateTimesheetRequest{Value: "В"})
		assert.ErrorIs(t, err, timesheeterrors.ErrRecordLocked)
	})

	t.Run("delete submitted locked", func(t *testing.T) {
		deps := setupService(t)
		rec := mustCreate(t, deps, masterID, employeeID, "2024-04-01", "8")

		expectTx(deps.sqlMock)
		_, err := deps.service.Submit(context.Background(), masterID, "master", rec.ID)
		assert.NoError(t, err)

		expectRollback(deps.sqlMock)
		err = deps.service.Delete(context.Background(), masterID, "master", rec.ID)
		assert.ErrorIs(t, err, timesheeterrors.ErrRecordLocked)
	})
}

func TestTimesheetService_BulkSubmit(t *testing.T) {
	masterID := uuid.NewString()
	employeeID := uuid.NewString()

	deps := setupService(t)

	// Five records, one already submitted: 4 of 5 succeed.
	ids := make([]string, 0, 5)
	for day := 1; day <= 5; day++ {
		rec := mustCreate(t, deps, masterID, employeeID, time.Date(2024, 4, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), "8")
		ids = append(ids, rec.ID)
	}

	expectTx(deps.sqlMock)
	_, err := deps.service.Submit(context.Background(), masterID, "master", ids[2])
	assert.NoError(t, err)

	for i := 0; i < 5; i++ {
		if i == 2 {
			expectRollback(deps.sqlMock)
		} else {
			expectTx(deps.sqlMock)
		}
	}
	result, err := deps.service.BulkSubmit(context.Background(), masterID, "master", ids)

	assert.NoError(t, err)
	assert.Equal(t, 5, result.Requested)
	assert.Equal(t, 4, result.Succeeded)
	assert.Len(t, result.Skipped, 1)
	assert.Equal(t, ids[2], result.Skipped[0].ID)
}

func TestTimesheetService_SubmitMonth(t *testing.T) {
	masterID := uuid.NewString()

	empl := employee.Employee{ID: uuid.New(), FullName: "Сидоров", MasterID: uuid.MustParse(masterID), IsActive: true}

	newService := func(deps *serviceDeps) timesheet.Service {
		return timesheet.NewService(deps.db, deps.repo, &fakeEmployeeRepo{options: []employee.Employee{empl}},
			&fakeCalendarService{resolver: calendar.NewResolver(nil)}, deps.outbox, deps.users)
	}

	t.Run("submits all drafts of the month", func(t *testing.T) {
		deps := setupService(t)
		svc := newService(deps)

		var ids []string
		for day := 1; day <= 4; day++ {
			rec := mustCreate(t, deps, masterID, empl.ID.String(), time.Date(2024, 4, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), "8")
			ids = append(ids, rec.ID)
		}
		// A record outside the month stays untouched.
		outside := mustCreate(t, deps, masterID, empl.ID.String(), "2024-05-01", "8")

		expectTx(deps.sqlMock)
		_, err := deps.service.Submit(context.Background(), masterID, "master", ids[1])
		assert.NoError(t, err)

		// Already-submitted records are filtered out before the loop.
		for i := 0; i < 3; i++ {
			expectTx(deps.sqlMock)
		}
		result, err := svc.SubmitMonth(context.Background(), masterID, "master", 2024, 4)

		assert.NoError(t, err)
		assert.Equal(t, 3, result.Requested)
		assert.Equal(t, 3, result.Succeeded)
		assert.Empty(t, result.Skipped)

		for _, id := range ids {
			rec, err := deps.service.GetByID(context.Background(), id)
			assert.NoError(t, err)
			assert.Equal(t, "submitted", rec.Status)
		}
		kept, err := deps.service.GetByID(context.Background(), outside.ID)
		assert.NoError(t, err)
		assert.Equal(t, "draft", kept.Status)
	})

	t.Run("empty month is a no-op", func(t *testing.T) {
		deps := setupService(t)
		svc := newService(deps)

		result, err := svc.SubmitMonth(context.Background(), masterID, "master", 2024, 4)
		assert.NoError(t, err)
		assert.Zero(t, result.Requested)
	})

	t.Run("invalid month", func(t *testing.T) {
		deps := setupService(t)
		svc := newService(deps)

		_, err := svc.SubmitMonth(context.Background(), masterID, "master", 2024, 0)
		assert.ErrorIs(t, err, timesheeterrors.ErrInvalidMonth)
	})
}

func TestTimesheetService_BulkApprove(t *testing.T) {
	masterID := uuid.NewString()
	plannerID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("invalid action", func(t *testing.T) {
		deps := setupService(t)
		_, err := deps.service.BulkApprove(context.Background(), plannerID, []string{uuid.NewString()}, "reject")
		assert.ErrorIs(t, err, timesheeterrors.ErrInvalidBulkAction)
	})

	t.Run("approve set", func(t *testing.T) {
		deps := setupService(t)
		var ids []string
		for day := 1; day <= 3; day++ {
			rec := mustCreate(t, deps, masterID, employeeID, time.Date(2024, 4, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), "8")
			ids = append(ids, rec.ID)
		}

		for range ids {
			expectTx(deps.sqlMock)
		}
		result, err := deps.service.BulkApprove(context.Background(), plannerID, ids, "approve")

		assert.NoError(t, err)
		assert.Equal(t, 3, result.Succeeded)
		assert.Len(t, deps.outbox.created, 3)
	})
}

func TestTimesheetService_QuickEdit(t *testing.T) {
	masterID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("save creates a draft", func(t *testing.T) {
		deps := setupService(t)

		expectTx(deps.sqlMock)
		resp, err := deps.service.QuickEdit(context.Background(), masterID, "master", timesheet.QuickEditRequest{
			EmployeeID: employeeID,
			Date:       "2024-04-01",
			Value:      "8",
			Action:     "save",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.RecordID)
		assert.Equal(t, "8 ч", resp.DisplayValue)
		assert.Equal(t, "draft", resp.Status)
		assert.True(t, resp.CanEdit)
	})

	t.Run("save over existing updates it", func(t *testing.T) {
		deps := setupService(t)
		rec := mustCreate(t, deps, masterID, employeeID, "2024-04-01", "8")

		expectTx(deps.sqlMock)
		resp, err := deps.service.QuickEdit(context.Background(), masterID, "master", timesheet.QuickEditRequest{
			EmployeeID: employeeID,
			Date:       "2024-04-01",
			Value:      "О",
			Action:     "save",
		})

		assert.NoError(t, err)
		assert.Equal(t, rec.ID, resp.RecordID)
		assert.Equal(t, "О", resp.DisplayValue)
	})

	t.Run("empty value on save deletes the record", func(t *testing.T) {
		deps := setupService(t)
		rec := mustCreate(t, deps, masterID, employeeID, "2024-04-01", "8")

		expectTx(deps.sqlMock)
		resp, err := deps.service.QuickEdit(context.Background(), masterID, "master", timesheet.QuickEditRequest{
			EmployeeID: employeeID,
			Date:       "2024-04-01",
			Value:      "",
			Action:     "save",
		})

		assert.NoError(t, err)
		assert.Empty(t, resp.DisplayValue)

		_, err = deps.service.GetByID(context.Background(), rec.ID)
		assert.ErrorIs(t, err, timesheeterrors.ErrTimesheetNotFound)
	})

	t.Run("delete of missing cell is a no-op", func(t *testing.T) {
		deps := setupService(t)

		resp, err := deps.service.QuickEdit(context.Background(), masterID, "master", timesheet.QuickEditRequest{
			EmployeeID: employeeID,
			Date:       "2024-04-01",
			Action:     "delete",
		})

		assert.NoError(t, err)
		assert.True(t, resp.CanEdit)
	})

	t.Run("bad value rejected", func(t *testing.T) {
		deps := setupService(t)

		_, err := deps.service.QuickEdit(context.Background(), masterID, "master", timesheet.QuickEditRequest{
			EmployeeID: employeeID,
			Date:       "2024-04-01",
			Value:      "0",
			Action:     "save",
		})

		assert.ErrorIs(t, err, daycode.ErrInvalidValue)
	})
}

func TestTimesheetService_GenerateMonth(t *testing.T) {
	masterID := uuid.NewString()

	empl := employee.Employee{ID: uuid.New(), FullName: "Иванов", MasterID: uuid.MustParse(masterID), IsActive: true}

	newService := func(deps *serviceDeps, resolver *calendar.Resolver) timesheet.Service {
		return timesheet.NewService(deps.db, deps.repo, &fakeEmployeeRepo{options: []employee.Employee{empl}},
			&fakeCalendarService{resolver: resolver}, deps.outbox, deps.users)
	}

	t.Run("calendar defaults fill the month", func(t *testing.T) {
		deps := setupService(t)
		// 2024-05-09 holiday makes 2024-05-08 a preholiday.
		resolver := calendar.NewResolver([]calendar.Holiday{
			{Date: time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC), Kind: calendar.KindHoliday},
		})
		svc := newService(deps, resolver)

		expectTx(deps.sqlMock)
		resp, err := svc.GenerateMonth(context.Background(), masterID, timesheet.GenerateMonthRequest{
			Year:  2024,
			Month: 5,
		})

		assert.NoError(t, err)
		assert.Equal(t, 31, resp.Created)

		day8, err := deps.repo.FindByEmployeeAndDate(context.Background(), empl.ID.String(), time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC))
		assert.NoError(t, err)
		assert.Equal(t, "7", day8.Value)

		day9, _ := deps.repo.FindByEmployeeAndDate(context.Background(), empl.ID.String(), time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "В", day9.Value)

		// Saturday
		day11, _ := deps.repo.FindByEmployeeAndDate(context.Background(), empl.ID.String(), time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "В", day11.Value)

		// Plain weekday
		day6, _ := deps.repo.FindByEmployeeAndDate(context.Background(), empl.ID.String(), time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "8", day6.Value)
	})

	t.Run("existing records are skipped", func(t *testing.T) {
		deps := setupService(t)
		svc := newService(deps, calendar.NewResolver(nil))

		mustCreate(t, deps, masterID, empl.ID.String(), "2024-04-10", "О")

		expectTx(deps.sqlMock)
		resp, err := svc.GenerateMonth(context.Background(), masterID, timesheet.GenerateMonthRequest{
			Year:  2024,
			Month: 4,
		})

		assert.NoError(t, err)
		assert.Equal(t, 29, resp.Created)

		kept, _ := deps.repo.FindByEmployeeAndDate(context.Background(), empl.ID.String(), time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "О", kept.Value)
	})

	t.Run("fixed default value with weekend skip", func(t *testing.T) {
		deps := setupService(t)
		svc := newService(deps, calendar.NewResolver(nil))

		expectTx(deps.sqlMock)
		resp, err := svc.GenerateMonth(context.Background(), masterID, timesheet.GenerateMonthRequest{
			Year:         2024,
			Month:        4,
			DefaultValue: "8",
			SkipWeekends: true,
		})

		assert.NoError(t, err)
		// April 2024 has 22 weekdays.
		assert.Equal(t, 22, resp.Created)
	})

	t.Run("invalid month", func(t *testing.T) {
		deps := setupService(t)
		svc := newService(deps, calendar.NewResolver(nil))

		_, err := svc.GenerateMonth(context.Background(), masterID, timesheet.GenerateMonthRequest{
			Year:  2024,
			Month: 13,
		})

		assert.ErrorIs(t, err, timesheeterrors.ErrInvalidMonth)
	})
}
