package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"bookly_backend/internal/models"
)

// TenantRepository defines the interface for tenant-related database reads.
// Tenant lifecycle (creation, deactivation) belongs to external account
// management, so there are no write methods here.
type TenantRepository interface {
	GetActiveTenants() ([]models.Tenant, error)
	GetTenantByID(id int64) (*models.Tenant, error)
}

type tenantRepository struct {
	db *sql.DB
}

// NewTenantRepository creates a new instance of TenantRepository.
func NewTenantRepository(db *sql.DB) TenantRepository {
	return &tenantRepository{db: db}
}

const tenantColumns = `id, name, email, currency, is_active, created_at, updated_at`

func scanTenant(row scanner) (*models.Tenant, error) {
	var tenant models.Tenant
	var email sql.NullString
	err := row.Scan(
		&tenant.ID, &tenant.Name, &email, &tenant.Currency,
		&tenant.IsActive, &tenant.CreatedAt, &tenant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning tenant: %v", ErrDatabaseError, err)
	}
	if email.Valid {
		tenant.Email = &email.String
	}
	return &tenant, nil
}

func (r *tenantRepository) GetActiveTenants() ([]models.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE is_active = TRUE ORDER BY id ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying active tenants: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	tenants := []models.Tenant{}
	for rows.Next() {
		tenant, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, *tenant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating tenants: %v", ErrDatabaseError, err)
	}
	return tenants, nil
}

func (r *tenantRepository) GetTenantByID(id int64) (*models.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	return scanTenant(r.db.QueryRow(query, id))
}
