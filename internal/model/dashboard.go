package model

// DashboardStats is a point-in-time summary of one client's rows.
// It is always derived, never stored.
type DashboardStats struct {
	TotalEmployees int64   `json:"total_employees"`
	MonthlyPayroll float64 `json:"monthly_payroll"` // Sum of all salaries
	ActiveTasks    int64   `json:"active_tasks"`
	TotalEvents    int64   `json:"total_events"`
}
