package timesheet

import (
	"time"

	"github.com/k1slee/worktime-tracking/internal/employee"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
)

// StatusLabel returns the human label shown in exports and the UI.
func StatusLabel(status string) string {
	switch status {
	case StatusDraft:
		return "Черновик"
	case StatusSubmitted:
		return "Отправлен"
	case StatusApproved:
		return "Утверждён"
	default:
		return status
	}
}

type Timesheet struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Date       time.Time          `gorm:"type:date;not null;uniqueIndex:uq_timesheets_date_employee"`
	EmployeeID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:uq_timesheets_date_employee"`
	Employee   *employee.Employee `gorm:"foreignKey:EmployeeID"`
	MasterID   uuid.UUID          `gorm:"type:uuid;not null;index"`
	Value      string             `gorm:"type:varchar(10);not null"`
	Status     string             `gorm:"type:varchar(20);not null;default:'draft';index"`
	ApprovedBy *uuid.UUID         `gorm:"type:uuid"`
	ApprovedAt *time.Time
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Timesheet) TableName() string {
	return "timesheets"
}

// CanEdit is the single source of truth for record mutability: only
// drafts may be changed or removed.
func (t *Timesheet) CanEdit() bool {
	return t.Status == StatusDraft
}

func isAllowedStatusTransition(currentStatus, targetStatus string) bool {
	switch currentStatus {
	case StatusDraft:
		// Masters hand drafts over; planners may also approve a draft
		// directly without the submit step.
		return targetStatus == StatusSubmitted || targetStatus == StatusApproved
	case StatusSubmitted:
		return targetStatus == StatusApproved
	case StatusApproved:
		return targetStatus == StatusDraft
	default:
		return false
	}
}
