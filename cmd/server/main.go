package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"bookly_backend/internal/database"
	"bookly_backend/internal/mailer"
	router_pkg "bookly_backend/internal/router"
	"bookly_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	// Load .env if present; real deployments set env directly.
	if err := godotenv.Load(); err != nil {
		utils.LogDebug("No .env file found, using process environment")
	}

	// Database configuration: a full DATABASE_URL wins over discrete vars.
	dbURL := utils.Getenv("DATABASE_URL", "")
	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "bookly_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "bookly_password")
	dbName := utils.Getenv("DB_NAME", "bookly_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")

	database.InitDB(dbURL, dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)
	utils.LogInfo("Database initialized", map[string]interface{}{"configured_from_env": true})

	if err := database.RunMigrations(database.GetDB()); err != nil {
		utils.LogError(err, "Failed to run database migrations")
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Service-token secret and email credentials are required.
	utils.InitJWT(utils.MustGetenv("JWT_SECRET"))
	mail := mailer.NewResendMailer(utils.MustGetenv("RESEND_API_KEY"))
	fromAddress := utils.Getenv("REPORT_FROM_ADDRESS", "Bookly Reports <reports@bookly.app>")

	router := gin.Default()

	// Add GinLogger middleware for request logging
	router.Use(utils.GinLogger())

	// CORS configuration. The scheduler does a pre-flight OPTIONS before the
	// trigger call, so OPTIONS must be allowed on every route.
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"*"}
	}

	config := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
		config.AllowCredentials = true
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(config))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	dbConn := database.GetDB()
	router_pkg.Setup(router, dbConn, mail, fromAddress)

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port, "configured_from_env": true})

	if err := router.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
