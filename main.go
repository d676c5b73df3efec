package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"mozeh-api/config"
	"mozeh-api/handlers"
	"mozeh-api/routes"
	"mozeh-api/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func newUploadStore() storage.Store {
	if config.UploadDriver() == "s3" {
		store, err := storage.NewS3Store(config.S3Bucket())
		if err != nil {
			logrus.WithError(err).Fatal("failed to init s3 upload store")
		}
		return store
	}
	store, err := storage.NewDiskStore(config.UploadDir())
	if err != nil {
		logrus.WithError(err).Fatal("failed to init upload dir")
	}
	return store
}

func allowedOrigins() []string {
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		return strings.Split(v, ",")
	}
	return []string{"http://localhost:3000"}
}

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	handlers.InitUploads(newUploadStore())

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Locally stored uploads are served directly
	r.Static("/uploads", config.UploadDir())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Mozeh Shop API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Infof("server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
