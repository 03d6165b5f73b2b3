package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vendastock/vendaStock/controllers"
	"github.com/vendastock/vendaStock/middleware"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/auth/signout", controllers.Signout)
		protected.GET("/session", controllers.VerifyAuth)

		// Product routes
		products := protected.Group("/products")
		{
			products.GET("", controllers.GetProducts)
			products.GET("/low-stock-items", controllers.LowStockItems)
			products.GET("/total-value", controllers.TotalValue)
			products.GET("/:id", controllers.GetProduct)
			products.POST("", controllers.CreateProduct)
			products.PUT("/:id", controllers.UpdateProduct)
			products.DELETE("/:id", controllers.DeleteProduct)
		}

		// Sales routes
		sales := protected.Group("/sales")
		{
			sales.POST("", controllers.CreateSale)
			sales.GET("", controllers.GetSales)
			sales.GET("/recent", controllers.GetRecentSales)
			sales.GET("/products", controllers.GetProductsForSales)
		}

		// User routes
		users := protected.Group("/users")
		{
			users.GET("/profile", controllers.GetProfile)
			users.POST("/changePassword", controllers.ChangePassword)
			users.GET("", middleware.AdminMiddleware(), controllers.GetUsers)
			users.POST("", middleware.AdminMiddleware(), controllers.CreateUser)
			users.PUT("/:id", middleware.AdminMiddleware(), controllers.UpdateUser)
			users.DELETE("/:id", middleware.AdminMiddleware(), controllers.DeleteUser)
		}

		// Dashboard and reports
		protected.GET("/dashboard/stats", controllers.GetDashboardStats)
		protected.POST("/reports", controllers.GenerateReport)
	}
}
