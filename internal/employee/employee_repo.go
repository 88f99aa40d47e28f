package employee

import (
	"context"
	"database/sql"

	"github.com/k1slee/worktime-tracking/internal/department"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindActive(ctx context.Context, masterID, departmentID string) ([]Employee, error)
	FindOptionsByMaster(ctx context.Context, masterID string) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
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
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("full_name asc").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindActive(ctx context.Context, masterID, departmentID string) ([]Employee, error) {
	q := r.db.WithContext(ctx).
		Preload("Department").
		Where("is_active = ?", true)
	if masterID != "" {
		q = q.Where("master_id = ?", masterID)
	}
	if departmentID != "" {
		q = q.Scopes(department.Scope(departmentID))
	}

	var empls []Employee
	err := q.Order("full_name asc").Find(&empls).Error
	return empls, err
}

func (r *repository) FindOptionsByMaster(ctx context.Context, masterID string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where("master_id = ?", masterID).
		Where("is_active = ?", true).
		Order("full_name asc").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Employee{}, "id = ?", id).Error
}
