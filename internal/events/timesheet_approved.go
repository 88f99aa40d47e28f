package events

import "time"

const TimesheetApprovedTopic = "tabel.timesheet.lifecycle.v1"

type TimesheetApprovedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	TimesheetID string    `json:"timesheet_id"`
	EmployeeID  string    `json:"employee_id"`
	MasterID    string    `json:"master_id"`
	Date        string    `json:"date"`
	Value       string    `json:"value"`
	ApprovedBy  string    `json:"approved_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
