package models

import "time"

// Appointment statuses. The set is fixed; anything else in the column is
// treated as neither completed nor cancelled.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// IsValidAppointmentStatus reports whether s is one of the known statuses.
func IsValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is a single scheduled service transaction belonging to a
// tenant. Rows are immutable once read by the report job.
type Appointment struct {
	ID          int64   `json:"id"`
	TenantID    int64   `json:"tenant_id"`
	ServiceID   *int64  `json:"service_id,omitempty"`
	ServiceName *string `json:"service_name,omitempty"`
	CustomerID  *int64  `json:"customer_id,omitempty"`
	Status      string  `json:"status"`
	// Amount is kept as raw column text: legacy rows carry free-form values
	// and the aggregation layer decides how to coerce them.
	Amount   *string   `json:"amount,omitempty"`
	StartsAt time.Time `json:"starts_at"`
}
