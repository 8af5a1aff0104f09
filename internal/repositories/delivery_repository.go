package repositories

import (
	"database/sql"
	"fmt"
)

// DeliveryRepository tracks which tenant/period report emails have already
// gone out, so a re-run for the same window does not re-send. Period keys
// are "YYYY-MM" strings.
type DeliveryRepository interface {
	WasReportSent(tenantID int64, period string) (bool, error)
	MarkReportSent(executor SQLExecutor, tenantID int64, period string) error
}

type deliveryRepository struct {
	db *sql.DB
}

// NewDeliveryRepository creates a new instance of DeliveryRepository.
func NewDeliveryRepository(db *sql.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) WasReportSent(tenantID int64, period string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM report_deliveries WHERE tenant_id = $1 AND period = $2`
	if err := r.db.QueryRow(query, tenantID, period).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: checking report delivery for tenant %d: %v", ErrDatabaseError, tenantID, err)
	}
	return count > 0, nil
}

func (r *deliveryRepository) MarkReportSent(executor SQLExecutor, tenantID int64, period string) error {
	query := `
		INSERT INTO report_deliveries (tenant_id, period, sent_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (tenant_id, period) DO NOTHING`
	if _, err := executor.Exec(query, tenantID, period); err != nil {
		return fmt.Errorf("%w: marking report sent for tenant %d: %v", ErrDatabaseError, tenantID, err)
	}
	return nil
}
