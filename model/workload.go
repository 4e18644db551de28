package model

import "time"

// WorkloadEntry is a single tracked piece of work assigned to an employee.
// EmployeeName is joined in from the owning user record on reads.
type WorkloadEntry struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	EmployeeName string    `json:"name"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	ReceivedDate time.Time `json:"received_date"`
	Division     string    `json:"division"`
	CreatedAt    time.Time `json:"created_at"`
}

// WorkloadFilter narrows and pages the workload table.
// Empty string fields (or "all") mean no filtering on that column.
type WorkloadFilter struct {
	Search   string
	Category string
	Status   string
	Name     string
	Page     int
	Limit    int
}

// WorkloadOptions holds the distinct values used to populate form dropdowns.
type WorkloadOptions struct {
	Categories []string `json:"categories"`
	Statuses   []string `json:"statuses"`
	Divisions  []string `json:"divisions"`
}
