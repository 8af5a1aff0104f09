package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"bookly_backend/internal/services"
	"bookly_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// RunMonthlyReports triggers the monthly report batch. The request body is
// unused; the reporting window is derived from the current wall-clock time.
func (h *ReportHandler) RunMonthlyReports(c *gin.Context) {
	force := c.Query("force") == "true"

	result, err := h.reportService.RunMonthlyReports(time.Now(), force)
	if err != nil {
		utils.LogError(err, "RunMonthlyReports: whole-run failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("%d tenants processed, %d reports sent", result.TenantsProcessed, result.EmailsSent),
		"result":  result,
	})
}

// PreviewMonthlyReport renders one tenant's report HTML without sending it.
func (h *ReportHandler) PreviewMonthlyReport(c *gin.Context) {
	tenantID, err := utils.StrToInt64(c.Query("tenant_id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid or missing tenant_id.")
		return
	}

	html, err := h.reportService.PreviewMonthlyReport(tenantID, c.Query("month"))
	if err != nil {
		if errors.Is(err, services.ErrReportTenantNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, err.Error(), ""))
		} else if errors.Is(err, services.ErrReportMonthFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
		} else {
			utils.LogError(err, "PreviewMonthlyReport: Error from reportService")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to render report preview.", "Internal error"))
		}
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// GetTenantDashboard returns month-to-date metrics for a single tenant.
func (h *ReportHandler) GetTenantDashboard(c *gin.Context) {
	tenantID, err := utils.StrToInt64(c.Query("tenant_id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid or missing tenant_id.")
		return
	}

	dashboard, err := h.reportService.GetTenantDashboard(tenantID, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrReportTenantNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, err.Error(), ""))
		} else {
			utils.LogError(err, "GetTenantDashboard: Error from reportService")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build tenant dashboard.", "Internal error"))
		}
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
