package handlers

import (
	"errors"
	"net/http"

	"bookly_backend/internal/services"
	"bookly_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TenantHandler holds the tenant service.
type TenantHandler struct {
	tenantService services.TenantService
}

// NewTenantHandler creates a new TenantHandler.
func NewTenantHandler(ts services.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: ts}
}

// GetTenants lists all active tenants.
func (h *TenantHandler) GetTenants(c *gin.Context) {
	tenants, err := h.tenantService.GetActiveTenants()
	if err != nil {
		utils.LogError(err, "GetTenants: Error from tenantService.GetActiveTenants")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch tenants.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, tenants)
}

// GetTenantByID fetches a single tenant.
func (h *TenantHandler) GetTenantByID(c *gin.Context) {
	tenantID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid tenant ID format.", err.Error()))
		return
	}

	tenant, err := h.tenantService.GetTenantByID(tenantID)
	if err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, err.Error(), ""))
		} else {
			utils.LogError(err, "GetTenantByID: Error from tenantService.GetTenantByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch tenant.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, tenant)
}
