package routes

import (
	"mozeh-api/handlers"
	"mozeh-api/middleware"
	"mozeh-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog (no auth needed)
		public.GET("/products", handlers.ListProducts)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/whoami", handlers.WhoAmI)
		auth.POST("/auth/update-profile", handlers.UpdateProfile)
		auth.POST("/auth/upload-avatar", handlers.UploadAvatar)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/orders", handlers.CreateOrder)
		customer.GET("/my/orders", handlers.GetMyOrders)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/stats", handlers.AdminGetStats)
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.GET("/drivers", handlers.AdminGetDrivers)
		admin.POST("/orders/:id/assign", handlers.AdminAssignDriver)
		admin.POST("/orders/:id/cancel", handlers.AdminCancelOrder)
		admin.POST("/orders/:id/status", handlers.AdminAdvanceOrderStatus)

		admin.GET("/products", handlers.AdminGetProducts)
		admin.POST("/products", handlers.AdminCreateProduct)
		admin.PUT("/products/:id", handlers.AdminUpdateProduct)
		admin.DELETE("/products/:id", handlers.AdminDeleteProduct)
	}

	// ── Driver routes ──────────────────────────────────────────────
	driver := r.Group("/api/driver")
	driver.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleDriver))
	{
		driver.GET("/orders", handlers.DriverGetOrders)
		driver.POST("/orders/:id/status", handlers.DriverAdvanceOrderStatus)
	}
}
