package calendar

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	ListRange(ctx context.Context, from, to time.Time) ([]Holiday, error)
	GetOrCreate(ctx context.Context, date time.Time, kind, name string) (created bool, err error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListRange(ctx context.Context, from, to time.Time) ([]Holiday, error) {
	var rows []Holiday
	err := r.db.WithContext(ctx).
		Where("date >= ?", from.Format("2006-01-02")).
		Where("date <= ?", to.Format("2006-01-02")).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

// GetOrCreate keeps one row per date. A date already registered keeps its
// original kind, whichever importer ran first.
func (r *repository) GetOrCreate(ctx context.Context, date time.Time, kind, name string) (bool, error) {
	var existing Holiday
	err := r.db.WithContext(ctx).
		Where("date = ?", date.Format("2006-01-02")).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	row := Holiday{
		ID:   uuid.New(),
		Date: date,
		Kind: kind,
		Name: name,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return false, err
	}
	return true, nil
}
