package employee

type CreateEmployeeRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Position     string `json:"position"`
	DepartmentID string `json:"department_id"`
	BadgeNumber  string `json:"badge_number"`
	HireDate     string `json:"hire_date" binding:"required"`
	MasterID     string `json:"master_id"`
}

type UpdateEmployeeRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Position     string `json:"position"`
	DepartmentID string `json:"department_id"`
	BadgeNumber  string `json:"badge_number" binding:"required"`
	HireDate     string `json:"hire_date" binding:"required"`
	MasterID     string `json:"master_id"`
	IsActive     *bool  `json:"is_active"`
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID           string                      `json:"id"`
	BadgeNumber  string                      `json:"badge_number"`
	FullName     string                      `json:"full_name"`
	Position     string                      `json:"position"`
	DepartmentID string                      `json:"department_id,omitempty"`
	Department   *EmployeeDepartmentResponse `json:"department,omitempty"`
	MasterID     string                      `json:"master_id"`
	IsActive     bool                        `json:"is_active"`
	HireDate     string                      `json:"hire_date"`
}
