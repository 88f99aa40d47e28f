package monthview

import "github.com/k1slee/worktime-tracking/internal/daycode"

// Filter narrows the employee set of a month view. Masters are always
// pinned to their own employees, so MasterID only matters for planners
// and admins.
type Filter struct {
	DepartmentID string
	MasterID     string
}

// StatusEmpty marks a cell with no stored record behind it.
const StatusEmpty = "empty"

// Cell is one employee-day in the grid. Cells backed by a stored record
// carry its id and status; defaulted cells carry the calendar-derived
// code with status "empty".
type Cell struct {
	Day        int    `json:"day"`
	RecordID   string `json:"record_id,omitempty"`
	Value      string `json:"value"`
	Display    string `json:"display"`
	Status     string `json:"status,omitempty"`
	Editable   bool   `json:"editable"`
	Weekend    bool   `json:"weekend"`
	Holiday    bool   `json:"holiday"`
	PreHoliday bool   `json:"preholiday"`
}

// EmployeeRow is one employee's reconciled month: the day cells plus
// the statistics folded over them.
type EmployeeRow struct {
	EmployeeID  string            `json:"employee_id"`
	BadgeNumber string            `json:"badge_number"`
	FullName    string            `json:"full_name"`
	Position    string            `json:"position,omitempty"`
	Department  string            `json:"department,omitempty"`
	MasterID    string            `json:"master_id"`
	Cells       []Cell            `json:"cells"`
	Stats       daycode.Aggregate `json:"stats"`
}

// MonthView is the derived, non-persisted reconciliation of stored
// records and calendar defaults for one month and employee set.
type MonthView struct {
	Year       int           `json:"year"`
	Month      int           `json:"month"`
	Days       int           `json:"days"`
	CanApprove bool          `json:"can_approve"`
	Rows       []EmployeeRow `json:"rows"`
}
