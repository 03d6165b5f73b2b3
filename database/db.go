package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/sirupsen/logrus"

	"github.com/vendastock/vendaStock/config"
	"github.com/vendastock/vendaStock/models"
)

var DB *gorm.DB

func ConnectDatabase(cfg config.Config) {
	connectionString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBName, cfg.DBPassword)

	var err error
	DB, err = gorm.Open("postgres", connectionString)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	//migrations
	DB.AutoMigrate(&models.Tenant{}, &models.User{}, &models.Product{}, &models.Sale{}, &models.SaleItem{})

	logrus.Info("connected to database")
}
