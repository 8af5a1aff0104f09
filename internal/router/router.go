package router

import (
	"database/sql"

	"bookly_backend/internal/handlers"
	"bookly_backend/internal/mailer"
	"bookly_backend/internal/repositories"
	"bookly_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, mail mailer.Mailer, fromAddress string) {
	// Initialize Repositories
	tenantRepo := repositories.NewTenantRepository(db)
	apptRepo := repositories.NewAppointmentRepository(db)
	deliveryRepo := repositories.NewDeliveryRepository(db)

	// Initialize Services
	reportService := services.NewReportService(tenantRepo, apptRepo, deliveryRepo, mail, fromAddress, db)
	tenantService := services.NewTenantService(tenantRepo)

	// Initialize Handlers
	reportHandler := handlers.NewReportHandler(reportService)
	tenantHandler := handlers.NewTenantHandler(tenantService)

	apiV1 := engine.Group("/api/v1")

	SetupReportRoutes(apiV1, reportHandler)
	SetupTenantRoutes(apiV1, tenantHandler)
}
