package department

import "gorm.io/gorm"

// Scope narrows a query to rows belonging to one department.
func Scope(departmentID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("department_id = ?", departmentID)
	}
}
