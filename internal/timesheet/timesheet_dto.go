package timesheet

type CreateTimesheetRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	Value      string `json:"value" binding:"required"`
}

type UpdateTimesheetRequest struct {
	Value string `json:"value" binding:"required"`
}

type QuickEditRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	Value      string `json:"value"`
	Action     string `json:"action" binding:"required"`
}

type QuickEditResponse struct {
	RecordID     string `json:"record_id,omitempty"`
	DisplayValue string `json:"display_value"`
	Status       string `json:"status"`
	CanEdit      bool   `json:"can_edit"`
}

type BulkRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

type BulkApproveRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1"`
	Action string   `json:"action" binding:"required"`
}

type SkippedRecord struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type BulkResult struct {
	Requested int             `json:"requested"`
	Succeeded int             `json:"succeeded"`
	Skipped   []SkippedRecord `json:"skipped,omitempty"`
}

type SubmitMonthRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required"`
}

type GenerateMonthRequest struct {
	Year         int    `json:"year" binding:"required"`
	Month        int    `json:"month" binding:"required"`
	DefaultValue string `json:"default_value"`
	SkipWeekends bool   `json:"skip_weekends"`
}

type GenerateMonthResponse struct {
	Created int `json:"created"`
}

type ExportFilter struct {
	From         string
	To           string
	MasterID     string
	DepartmentID string
	Status       string
}

type TimesheetResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	MasterID     string `json:"master_id"`
	Value        string `json:"value"`
	DisplayValue string `json:"display_value"`
	Status       string `json:"status"`
	CanEdit      bool   `json:"can_edit"`
	ApprovedBy   string `json:"approved_by,omitempty"`
	ApprovedAt   string `json:"approved_at,omitempty"`
}
