package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookly_backend/internal/models"
	"bookly_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTenantService struct {
	tenants []models.Tenant
	err     error
}

func (s *stubTenantService) GetActiveTenants() ([]models.Tenant, error) {
	return s.tenants, s.err
}

func (s *stubTenantService) GetTenantByID(tenantID int64) (*models.Tenant, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.tenants {
		if s.tenants[i].ID == tenantID {
			return &s.tenants[i], nil
		}
	}
	return nil, services.ErrTenantNotFound
}

func newTenantRouter(svc services.TenantService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewTenantHandler(svc)
	engine.GET("/tenants", h.GetTenants)
	engine.GET("/tenants/:id", h.GetTenantByID)
	return engine
}

func TestGetTenantsHandler(t *testing.T) {
	svc := &stubTenantService{tenants: []models.Tenant{
		{ID: 1, Name: "Salon Aurora", Currency: "EUR", IsActive: true},
		{ID: 2, Name: "Studio One", Currency: "USD", IsActive: true},
	}}
	engine := newTenantRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tenants", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var tenants []models.Tenant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tenants))
	require.Len(t, tenants, 2)
	assert.Equal(t, "Salon Aurora", tenants[0].Name)
}

func TestGetTenantByIDHandlerNotFound(t *testing.T) {
	engine := newTenantRouter(&stubTenantService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tenants/42", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTenantByIDHandlerBadID(t *testing.T) {
	engine := newTenantRouter(&stubTenantService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tenants/abc", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
