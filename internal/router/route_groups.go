package router

import (
	"bookly_backend/internal/handlers"
	"bookly_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupReportRoutes sets up the report routes. All of them require a
// service token: the batch trigger is called by the scheduler, the preview
// and dashboard by operator tooling.
func SetupReportRoutes(apiGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := apiGroup.Group("/reports")
	reportRoutes.Use(middleware.ServiceAuthMiddleware())
	{
		reportRoutes.POST("/monthly/run", reportHandler.RunMonthlyReports)
		reportRoutes.GET("/monthly/preview", reportHandler.PreviewMonthlyReport)
		reportRoutes.GET("/dashboard", reportHandler.GetTenantDashboard)
	}
}

// SetupTenantRoutes sets up the tenant routes.
func SetupTenantRoutes(apiGroup *gin.RouterGroup, tenantHandler *handlers.TenantHandler) {
	tenantRoutes := apiGroup.Group("/tenants")
	tenantRoutes.Use(middleware.ServiceAuthMiddleware())
	{
		tenantRoutes.GET("", tenantHandler.GetTenants)
		tenantRoutes.GET("/:id", tenantHandler.GetTenantByID)
	}
}
