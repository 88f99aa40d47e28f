package timesheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/k1slee/worktime-tracking/internal/calendar"
	"github.com/k1slee/worktime-tracking/internal/daycode"
	"github.com/k1slee/worktime-tracking/internal/employee"
	"github.com/k1slee/worktime-tracking/internal/events"
	"github.com/k1slee/worktime-tracking/internal/messaging/kafka"
	"github.com/k1slee/worktime-tracking/internal/rbac"
	"github.com/k1slee/worktime-tracking/internal/shared/contextutil"
	timesheeterrors "github.com/k1slee/worktime-tracking/internal/timesheet/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateTimesheetRequest) (TimesheetResponse, error)
	GetByID(ctx context.Context, id string) (TimesheetResponse, error)
	Update(ctx context.Context, actorID, role, id string, req UpdateTimesheetRequest) (TimesheetResponse, error)
	Delete(ctx context.Context, actorID, role, id string) error
	Submit(ctx context.Context, actorID, role, id string) (TimesheetResponse, error)
	Approve(ctx context.Context, actorID, id string) (TimesheetResponse, error)
	Unapprove(ctx context.Context, actorID, id string) (TimesheetResponse, error)
	BulkSubmit(ctx context.Context, actorID, role string, ids []string) (BulkResult, error)
	BulkApprove(ctx context.Context, actorID string, ids []string, action string) (BulkResult, error)
	SubmitMonth(ctx context.Context, actorID, role string, year, month int) (BulkResult, error)
	QuickEdit(ctx context.Context, actorID, role string, req QuickEditRequest) (QuickEditResponse, error)
	GenerateMonth(ctx context.Context, actorID string, req GenerateMonthRequest) (GenerateMonthResponse, error)
	ExportCSV(ctx context.Context, filter ExportFilter) ([]byte, error)
}

// UserDirectory is a local interface: the export needs display names
// for ids referencing users, not the auth module's whole repository.
type UserDirectory interface {
	FindFullNamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	calendarSvc  calendar.Service
	outbox       kafka.OutboxRepository
	users        UserDirectory
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	calendarSvc calendar.Service,
	outboxRepo kafka.OutboxRepository,
	users UserDirectory,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		calendarSvc:  calendarSvc,
		outbox:       outboxRepo,
		users:        users,
		logger:       l,
	}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateTimesheetRequest) (TimesheetResponse, error) {
	s.logger.Debug("create timesheet requested",
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
	)

	masterID, err := uuid.Parse(actorID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidActorID
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidEmployeeID
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return TimesheetResponse{}, err
	}
	if _, err := daycode.Parse(req.Value); err != nil {
		return TimesheetResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create timesheet begin tx failed", zap.Error(err))
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t := &Timesheet{
		ID:         uuid.New(),
		Date:       date,
		EmployeeID: employeeID,
		MasterID:   masterID,
		Value:      req.Value,
		Status:     StatusDraft,
	}

	// The uq_timesheets_date_employee constraint is the arbiter under
	// concurrent saves; losers get CONFLICT and re-fetch.
	if err := qtx.Create(ctx, t); err != nil {
		s.logger.Error("create timesheet persist failed", zap.Error(err))
		return TimesheetResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create timesheet commit failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	s.logger.Info("create timesheet success",
		zap.String("timesheet_id", t.ID.String()),
		zap.String("value", t.Value),
	)

	return mapToResponse(*t), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TimesheetResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, actorID, role, id string, req UpdateTimesheetRequest) (TimesheetResponse, error) {
	s.logger.Debug("update timesheet requested",
		zap.String("timesheet_id", id),
		zap.String("actor_id", actorID),
	)

	if _, err := daycode.Parse(req.Value); err != nil {
		return TimesheetResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update timesheet begin tx failed", zap.Error(err))
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	if err := s.checkOwnership(t, actorID, role); err != nil {
		return TimesheetResponse{}, err
	}
	if !t.CanEdit() {
		return TimesheetResponse{}, timesheeterrors.ErrRecordLocked
	}

	t.Value = req.Value

	if err := qtx.Update(ctx, t); err != nil {
		s.logger.Error("update timesheet persist failed", zap.Error(err))
		return TimesheetResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TimesheetResponse{}, err
	}

	s.logger.Info("update timesheet success", zap.String("timesheet_id", id))
	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, actorID, role, id string) error {
	s.logger.Debug("delete timesheet requested",
		zap.String("timesheet_id", id),
		zap.String("actor_id", actorID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete timesheet begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := s.checkOwnership(t, actorID, role); err != nil {
		return err
	}
	if !t.CanEdit() {
		return timesheeterrors.ErrRecordLocked
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete timesheet failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete timesheet success", zap.String("timesheet_id", id))
	return nil
}

func (s *service) Submit(ctx context.Context, actorID, role, id string) (TimesheetResponse, error) {
	return s.transitionStatus(ctx, actorID, role, id, StatusSubmitted)
}

func (s *service) Approve(ctx context.Context, actorID, id string) (TimesheetResponse, error) {
	return s.transitionStatus(ctx, actorID, rbac.RolePlanner, id, StatusApproved)
}

func (s *service) Unapprove(ctx context.Context, actorID, id string) (TimesheetResponse, error) {
	return s.transitionStatus(ctx, actorID, rbac.RolePlanner, id, StatusDraft)
}

func (s *service) transitionStatus(ctx context.Context, actorID, role, id, targetStatus string) (TimesheetResponse, error) {
	s.logger.Debug("transition timesheet status requested",
		zap.String("timesheet_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", targetStatus),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition timesheet begin tx failed", zap.Error(err))
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		return TimesheetResponse{}, mapRepositoryError(err)
	}

	// Submitting is the master handing over their own sheet; approval
	// and unapproval belong to the planning department.
	if targetStatus == StatusSubmitted {
		if err := s.checkOwnership(t, actorID, role); err != nil {
			return TimesheetResponse{}, err
		}
	}

	if !isAllowedStatusTransition(t.Status, targetStatus) {
		s.logger.Warn("transition timesheet status invalid",
			zap.String("timesheet_id", id),
			zap.String("from_status", t.Status),
			zap.String("to_status", targetStatus),
		)
		return TimesheetResponse{}, timesheeterrors.ErrInvalidStatusTransition
	}

	t.Status = targetStatus
	switch targetStatus {
	case StatusApproved:
		now := time.Now().UTC()
		t.ApprovedBy = &actorUUID
		t.ApprovedAt = &now
	default:
		t.ApprovedBy = nil
		t.ApprovedAt = nil
	}

	if err := qtx.Update(ctx, t); err != nil {
		s.logger.Error("transition timesheet persist failed",
			zap.String("timesheet_id", id),
			zap.Error(err),
		)
		return TimesheetResponse{}, mapRepositoryError(err)
	}

	if targetStatus == StatusApproved && s.outbox != nil {
		if err := s.queueApprovedEvent(ctx, tx, t); err != nil {
			return TimesheetResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("transition timesheet commit failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	s.logger.Info("transition timesheet status success",
		zap.String("timesheet_id", id),
		zap.String("status", targetStatus),
	)
	return mapToResponse(*t), nil
}

// queueApprovedEvent stores the approval event in the same transaction
// as the status change, so an event exists iff the approval landed.
func (s *service) queueApprovedEvent(ctx context.Context, tx *sql.Tx, t *Timesheet) error {
	rid := contextutil.GetRequestID(ctx)
	event := events.TimesheetApprovedEvent{
		EventType:   "timesheet_approved",
		RequestID:   rid,
		TimesheetID: t.ID.String(),
		EmployeeID:  t.EmployeeID.String(),
		MasterID:    t.MasterID.String(),
		Date:        t.Date.Format("2006-01-02"),
		Value:       t.Value,
		OccurredAt:  time.Now().UTC(),
	}
	if t.ApprovedBy != nil {
		event.ApprovedBy = t.ApprovedBy.String()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal approved event failed", zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "timesheet",
		AggregateID:   t.ID.String(),
		EventType:     event.EventType,
		Topic:         events.TimesheetApprovedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue approved event failed",
			zap.String("timesheet_id", t.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) BulkSubmit(ctx context.Context, actorID, role string, ids []string) (BulkResult, error) {
	result := BulkResult{Requested: len(ids)}
	for _, id := range ids {
		if _, err := s.Submit(ctx, actorID, role, id); err != nil {
			result.Skipped = append(result.Skipped, SkippedRecord{ID: id, Reason: err.Error()})
			continue
		}
		result.Succeeded++
	}

	s.logger.Info("bulk submit finished",
		zap.Int("requested", result.Requested),
		zap.Int("succeeded", result.Succeeded),
	)
	return result, nil
}

func (s *service) BulkApprove(ctx context.Context, actorID string, ids []string, action string) (BulkResult, error) {
	var transition func(context.Context, string, string) (TimesheetResponse, error)
	switch action {
	case "approve":
		transition = s.Approve
	case "unapprove":
		transition = s.Unapprove
	default:
		return BulkResult{}, timesheeterrors.ErrInvalidBulkAction
	}

	result := BulkResult{Requested: len(ids)}
	for _, id := range ids {
		if _, err := transition(ctx, actorID, id); err != nil {
			result.Skipped = append(result.Skipped, SkippedRecord{ID: id, Reason: err.Error()})
			continue
		}
		result.Succeeded++
	}

	s.logger.Info("bulk approve finished",
		zap.String("action", action),
		zap.Int("requested", result.Requested),
		zap.Int("succeeded", result.Succeeded),
	)
	return result, nil
}

// QuickEdit backs single grid cells: save upserts a draft, delete
// removes one, and an empty value on save counts as delete.
// SubmitMonth submits every draft record of the caller's employees for
// one month in a single call, so a master closing the month does not
// have to collect record ids first. Per-record failures are skipped and
// reported, same as BulkSubmit.
func (s *service) SubmitMonth(ctx context.Context, actorID, role string, year, month int) (BulkResult, error) {
	if month < 1 || month > 12 || year < 1 {
		return BulkResult{}, timesheeterrors.ErrInvalidMonth
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	employees, err := s.employeeRepo.FindOptionsByMaster(ctx, actorID)
	if err != nil {
		return BulkResult{}, err
	}
	if len(employees) == 0 {
		return BulkResult{}, nil
	}

	employeeIDs := make([]string, len(employees))
	for i, e := range employees {
		employeeIDs[i] = e.ID.String()
	}

	records, err := s.repo.ListRange(ctx, from, to, employeeIDs)
	if err != nil {
		return BulkResult{}, mapRepositoryError(err)
	}

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.Status == StatusDraft {
			ids = append(ids, rec.ID.String())
		}
	}

	result, err := s.BulkSubmit(ctx, actorID, role, ids)
	if err != nil {
		return BulkResult{}, err
	}

	s.logger.Info("submit month finished",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("succeeded", result.Succeeded),
	)
	return result, nil
}

func (s *service) QuickEdit(ctx context.Context, actorID, role string, req QuickEditRequest) (QuickEditResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return QuickEditResponse{}, err
	}
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return QuickEditResponse{}, timesheeterrors.ErrInvalidEmployeeID
	}

	action := strings.ToLower(strings.TrimSpace(req.Action))
	value := strings.TrimSpace(req.Value)
	if action == "save" && value == "" {
		action = "delete"
	}

	switch action {
	case "save":
		return s.quickSave(ctx, actorID, role, req.EmployeeID, date, value)
	case "delete":
		return s.quickDelete(ctx, actorID, role, req.EmployeeID, date)
	default:
		return QuickEditResponse{}, timesheeterrors.ErrInvalidAction
	}
}

func (s *service) quickSave(ctx context.Context, actorID, role, employeeID string, date time.Time, value string) (QuickEditResponse, error) {
	if _, err := daycode.Parse(value); err != nil {
		return QuickEditResponse{}, err
	}

	existing, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, date)
	switch {
	case err == nil:
		resp, uerr := s.Update(ctx, actorID, role, existing.ID.String(), UpdateTimesheetRequest{Value: value})
		if uerr != nil {
			return QuickEditResponse{}, uerr
		}
		return QuickEditResponse{
			RecordID:     resp.ID,
			DisplayValue: resp.DisplayValue,
			Status:       resp.Status,
			CanEdit:      resp.CanEdit,
		}, nil
	case isNotFound(err):
		resp, cerr := s.Create(ctx, actorID, CreateTimesheetRequest{
			EmployeeID: employeeID,
			Date:       date.Format("2006-01-02"),
			Value:      value,
		})
		if cerr != nil {
			return QuickEditResponse{}, cerr
		}
		return QuickEditResponse{
			RecordID:     resp.ID,
			DisplayValue: resp.DisplayValue,
			Status:       resp.Status,
			CanEdit:      resp.CanEdit,
		}, nil
	default:
		return QuickEditResponse{}, mapRepositoryError(err)
	}
}

func (s *service) quickDelete(ctx context.Context, actorID, role, employeeID string, date time.Time) (QuickEditResponse, error) {
	existing, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		if isNotFound(err) {
			// Clearing an empty cell is a no-op, not an error.
			return QuickEditResponse{DisplayValue: "", Status: "", CanEdit: true}, nil
		}
		return QuickEditResponse{}, mapRepositoryError(err)
	}

	if err := s.Delete(ctx, actorID, role, existing.ID.String()); err != nil {
		return QuickEditResponse{}, err
	}

	return QuickEditResponse{DisplayValue: "", Status: "", CanEdit: true}, nil
}

// GenerateMonth pre-fills draft records for every active employee of a
// master over a whole month, skipping days that already have a record.
func (s *service) GenerateMonth(ctx context.Context, actorID string, req GenerateMonthRequest) (GenerateMonthResponse, error) {
	masterID, err := uuid.Parse(actorID)
	if err != nil {
		return GenerateMonthResponse{}, timesheeterrors.ErrInvalidActorID
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 1 {
		return GenerateMonthResponse{}, timesheeterrors.ErrInvalidMonth
	}
	if req.DefaultValue != "" {
		if _, err := daycode.Parse(req.DefaultValue); err != nil {
			return GenerateMonthResponse{}, err
		}
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	employees, err := s.employeeRepo.FindOptionsByMaster(ctx, actorID)
	if err != nil {
		return GenerateMonthResponse{}, err
	}
	if len(employees) == 0 {
		return GenerateMonthResponse{}, nil
	}

	var defaults map[int]string
	if req.DefaultValue == "" {
		// One trailing day so the resolver can see next-day holidays.
		resolver, err := s.calendarSvc.SnapshotWindow(ctx, from, to)
		if err != nil {
			return GenerateMonthResponse{}, err
		}
		defaults = calendar.DefaultsForMonth(req.Year, req.Month, resolver)
	}

	employeeIDs := make([]string, len(employees))
	for i, e := range employees {
		employeeIDs[i] = e.ID.String()
	}

	existing, err := s.repo.ListRange(ctx, from, to, employeeIDs)
	if err != nil {
		return GenerateMonthResponse{}, err
	}
	taken := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		taken[rec.EmployeeID.String()+"|"+rec.Date.Format("2006-01-02")] = struct{}{}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate month begin tx failed", zap.Error(err))
		return GenerateMonthResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	days := calendar.DaysInMonth(req.Year, req.Month)
	created := 0
	for _, e := range employees {
		for day := 1; day <= days; day++ {
			date := time.Date(req.Year, time.Month(req.Month), day, 0, 0, 0, 0, time.UTC)
			if req.SkipWeekends {
				wd := date.Weekday()
				if wd == time.Saturday || wd == time.Sunday {
					continue
				}
			}
			key := e.ID.String() + "|" + date.Format("2006-01-02")
			if _, ok := taken[key]; ok {
				continue
			}

			value := req.DefaultValue
			if value == "" {
				value = defaults[day]
			}

			t := &Timesheet{
				ID:         uuid.New(),
				Date:       date,
				EmployeeID: e.ID,
				MasterID:   masterID,
				Value:      value,
				Status:     StatusDraft,
			}
			if err := qtx.Create(ctx, t); err != nil {
				s.logger.Error("generate month persist failed",
					zap.String("employee_id", e.ID.String()),
					zap.String("date", key),
					zap.Error(err),
				)
				return GenerateMonthResponse{}, mapRepositoryError(err)
			}
			created++
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate month commit failed", zap.Error(err))
		return GenerateMonthResponse{}, err
	}

	s.logger.Info("generate month success",
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Int("created", created),
	)
	return GenerateMonthResponse{Created: created}, nil
}

func (s *service) checkOwnership(t *Timesheet, actorID, role string) error {
	if role == rbac.RoleAdmin || role == rbac.RolePlanner {
		return nil
	}
	if t.MasterID.String() != actorID {
		return timesheeterrors.ErrNotRecordOwner
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, timesheeterrors.ErrInvalidDate
	}
	return t, nil
}

func mapToResponse(t Timesheet) TimesheetResponse {
	resp := TimesheetResponse{
		ID:           t.ID.String(),
		Date:         t.Date.Format("2006-01-02"),
		EmployeeID:   t.EmployeeID.String(),
		MasterID:     t.MasterID.String(),
		Value:        t.Value,
		DisplayValue: daycode.Display(t.Value),
		Status:       t.Status,
		CanEdit:      t.CanEdit(),
	}
	if t.Employee != nil {
		resp.EmployeeName = t.Employee.FullName
	}
	if t.ApprovedBy != nil {
		resp.ApprovedBy = t.ApprovedBy.String()
	}
	if t.ApprovedAt != nil {
		resp.ApprovedAt = t.ApprovedAt.Format(time.RFC3339)
	}
	return resp
}
