package services

import (
	"errors"
	"fmt"

	"bookly_backend/internal/models"
	"bookly_backend/internal/repositories"
)

var ErrTenantNotFound = errors.New("tenant not found")

// TenantService exposes read-only tenant lookups for the operator API.
type TenantService interface {
	GetActiveTenants() ([]models.Tenant, error)
	GetTenantByID(tenantID int64) (*models.Tenant, error)
}

type tenantService struct {
	tenantRepo repositories.TenantRepository
}

// NewTenantService creates a new instance of TenantService.
func NewTenantService(tr repositories.TenantRepository) TenantService {
	return &tenantService{tenantRepo: tr}
}

func (s *tenantService) GetActiveTenants() ([]models.Tenant, error) {
	tenants, err := s.tenantRepo.GetActiveTenants()
	if err != nil {
		return nil, fmt.Errorf("failed to get active tenants: %w", err)
	}
	return tenants, nil
}

func (s *tenantService) GetTenantByID(tenantID int64) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.GetTenantByID(tenantID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant by ID: %w", err)
	}
	return tenant, nil
}
