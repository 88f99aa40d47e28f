package employee

import (
	"time"

	"github.com/k1slee/worktime-tracking/internal/department"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID           uuid.UUID              `gorm:"type:uuid;primaryKey"`
	BadgeNumber  string                 `gorm:"size:32;not null;uniqueIndex:uq_employees_badge"`
	FullName     string                 `gorm:"size:255;not null"`
	Position     string                 `gorm:"size:255"`
	DepartmentID *uuid.UUID             `gorm:"type:uuid;index"`
	Department   *department.Department `gorm:"foreignKey:DepartmentID"`
	MasterID     uuid.UUID              `gorm:"type:uuid;not null;index"`
	IsActive     bool                   `gorm:"not null;default:true"`
	HireDate     time.Time              `gorm:"type:date"`
	CreatedAt    time.Time              `gorm:"autoCreateTime"`
	UpdatedAt    time.Time              `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt         `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
