package calendar

import (
	"time"

	"github.com/google/uuid"
)

const (
	KindHoliday    = "holiday"
	KindPreHoliday = "preholiday"
)

// Holiday is one production-calendar entry. Reference data: rows are
// created by the import tooling and only read afterwards.
type Holiday struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uq_holidays_date"`
	Kind      string    `gorm:"type:varchar(20);not null;default:holiday"`
	Name      string    `gorm:"size:255"`
	CreatedAt time.Time
}

func (Holiday) TableName() string {
	return "holidays"
}
