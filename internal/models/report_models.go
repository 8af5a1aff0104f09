package models

// ServiceCount is one entry of a ranked service list: a service name and how
// many appointments referenced it in the window.
type ServiceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ReportSummary holds the derived metrics for one tenant over one reporting
// window. It is computed fresh per run and never persisted.
type ReportSummary struct {
	TotalCount         int            `json:"total_count"`
	CompletedCount     int            `json:"completed_count"`
	CancelledCount     int            `json:"cancelled_count"`
	CompletedRevenue   float64        `json:"completed_revenue"`
	DistinctCustomers  int            `json:"distinct_customers"`
	TopServices        []ServiceCount `json:"top_services"`
	Currency           string         `json:"currency"`
	InvalidAmountCount int            `json:"invalid_amount_count,omitempty"`
}

// CompletionRate returns completed/total as a percentage rounded to one
// decimal, 0 when there are no appointments.
func (s *ReportSummary) CompletionRate() float64 {
	if s.TotalCount == 0 {
		return 0
	}
	rate := float64(s.CompletedCount) / float64(s.TotalCount) * 100
	return float64(int(rate*10+0.5)) / 10
}

// AvgRevenuePerCompleted returns completed revenue divided by completed
// count, 0 when nothing completed.
func (s *ReportSummary) AvgRevenuePerCompleted() float64 {
	if s.CompletedCount == 0 {
		return 0
	}
	return s.CompletedRevenue / float64(s.CompletedCount)
}

// RunResult summarizes one monthly report batch.
type RunResult struct {
	TenantsProcessed int `json:"tenants_processed"`
	EmailsSent       int `json:"emails_sent"`
	TenantsSkipped   int `json:"tenants_skipped"`
	TenantsFailed    int `json:"tenants_failed"`
}

// TenantDashboard holds month-to-date metrics for a single tenant, shown on
// the operator dashboard.
type TenantDashboard struct {
	TenantID          int64          `json:"tenant_id"`
	TenantName        string         `json:"tenant_name"`
	Month             string         `json:"month"` // e.g. "March 2025"
	TotalAppointments int            `json:"total_appointments"`
	CompletedCount    int            `json:"completed_count"`
	PendingCount      int            `json:"pending_count"`
	CancelledCount    int            `json:"cancelled_count"`
	CompletedRevenue  float64        `json:"completed_revenue"`
	DistinctCustomers int            `json:"distinct_customers"`
	TopServices       []ServiceCount `json:"top_services"`
	Currency          string         `json:"currency"`
}
