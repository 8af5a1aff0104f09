package repositories

import (
	"database/sql"
	"fmt"

	"bookly_backend/internal/models"
)

// AppointmentRepository defines the interface for appointment reads. The
// report job only ever consumes immutable historical rows.
type AppointmentRepository interface {
	// GetForTenantInRange returns all appointments for a tenant whose
	// occurrence date falls inside [startDate, endDate] inclusive. Dates are
	// ISO 8601 "YYYY-MM-DD" strings.
	GetForTenantInRange(tenantID int64, startDate, endDate string) ([]models.Appointment, error)
}

type appointmentRepository struct {
	db *sql.DB
}

// NewAppointmentRepository creates a new instance of AppointmentRepository.
func NewAppointmentRepository(db *sql.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) GetForTenantInRange(tenantID int64, startDate, endDate string) ([]models.Appointment, error) {
	// amount is read as raw text: legacy rows hold free-form values and the
	// service layer owns the coercion rules.
	query := `
		SELECT
			a.id, a.tenant_id, a.service_id, s.name, a.customer_id,
			a.status, a.amount::text, a.starts_at
		FROM appointments a
		LEFT JOIN services s ON a.service_id = s.id
		WHERE a.tenant_id = $1
		  AND a.starts_at::date >= $2
		  AND a.starts_at::date <= $3
		ORDER BY a.starts_at ASC, a.id ASC`

	rows, err := r.db.Query(query, tenantID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: querying appointments for tenant %d: %v", ErrDatabaseError, tenantID, err)
	}
	defer rows.Close()

	appointments := []models.Appointment{}
	for rows.Next() {
		var appt models.Appointment
		var serviceID, customerID sql.NullInt64
		var serviceName, amount sql.NullString

		if err := rows.Scan(
			&appt.ID, &appt.TenantID, &serviceID, &serviceName, &customerID,
			&appt.Status, &amount, &appt.StartsAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning appointment: %v", ErrDatabaseError, err)
		}
		if serviceID.Valid {
			appt.ServiceID = &serviceID.Int64
		}
		if serviceName.Valid {
			appt.ServiceName = &serviceName.String
		}
		if customerID.Valid {
			appt.CustomerID = &customerID.Int64
		}
		if amount.Valid {
			appt.Amount = &amount.String
		}
		appointments = append(appointments, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating appointments: %v", ErrDatabaseError, err)
	}
	return appointments, nil
}
