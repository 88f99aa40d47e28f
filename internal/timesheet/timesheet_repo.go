package timesheet

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Timesheet) error
	FindByID(ctx context.Context, id string) (*Timesheet, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Timesheet, error)
	ListRange(ctx context.Context, from, to time.Time, employeeIDs []string) ([]Timesheet, error)
	ListForExport(ctx context.Context, from, to time.Time, masterID, departmentID, status string) ([]Timesheet, error)
	Update(ctx context.Context, t *Timesheet) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, t *Timesheet) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Timesheet, error) {
	var t Timesheet
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Timesheet, error) {
	var t Timesheet
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListRange returns records with date in [from, to). An empty employee
// set means no filter.
func (r *repository) ListRange(ctx context.Context, from, to time.Time, employeeIDs []string) ([]Timesheet, error) {
	q := r.db.WithContext(ctx).
		Where("date >= ?", from).
		Where("date < ?", to)
	if len(employeeIDs) > 0 {
		q = q.Where("employee_id IN ?", employeeIDs)
	}

	var records []Timesheet
	err := q.Order("date asc").Find(&records).Error
	return records, err
}

func (r *repository) ListForExport(ctx context.Context, from, to time.Time, masterID, departmentID, status string) ([]Timesheet, error) {
	q := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Employee.Department").
		Where("date >= ?", from).
		Where("date < ?", to)
	if masterID != "" {
		q = q.Where("master_id = ?", masterID)
	}
	if departmentID != "" {
		q = q.Joins("JOIN employees ON employees.id = timesheets.employee_id").
			Where("employees.department_id = ?", departmentID)
	}
	if status != "" {
		q = q.Where("timesheets.status = ?", status)
	}

	var records []Timesheet
	err := q.Order("date asc, employee_id asc").Find(&records).Error
	return records, err
}

func (r *repository) Update(ctx context.Context, t *Timesheet) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Timesheet{}, "id = ?", id).Error
}
