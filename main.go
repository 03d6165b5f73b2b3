package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vendastock/vendaStock/config"
	"github.com/vendastock/vendaStock/database"
	"github.com/vendastock/vendaStock/routes"
)

func main() {
	// Load environment variables
	cfg := config.LoadConfig()

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is not set")
	}

	// Connect to database
	database.ConnectDatabase(cfg)
	defer database.DB.Close()

	// Initialize Gin router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Setup routes
	routes.SetupRoutes(router)

	// Start server
	logrus.WithField("port", cfg.Port).Info("starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
