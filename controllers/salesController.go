package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendastock/vendaStock/database"
	"github.com/vendastock/vendaStock/engine"
	"github.com/vendastock/vendaStock/models"
)

// saleEngine builds the transaction engine over the live database connection.
// Controllers never touch sale and stock rows directly.
func saleEngine() *engine.Engine {
	return engine.New(database.NewUnitOfWork(database.DB), nil)
}

func isValidationError(err error) bool {
	return errors.Is(err, engine.ErrNoCaller) ||
		errors.Is(err, engine.ErrEmptyClientName) ||
		errors.Is(err, engine.ErrNoLineItems) ||
		errors.Is(err, engine.ErrInvalidQuantity) ||
		errors.Is(err, engine.ErrNegativePrice)
}

func CreateSale(c *gin.Context) {
	caller, exists := currentCaller(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		ClientName  string            `json:"client_name"`
		ClientPhone string            `json:"client_phone"`
		Items       []engine.LineItem `json:"items"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sale, err := saleEngine().RecordSale(caller, input.ClientName, input.ClientPhone, input.Items)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		return
	}

	c.JSON(http.StatusCreated, sale)
}

func GetSales(c *gin.Context) {
	caller, exists := currentCaller(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var sales []models.Sale
	if err := database.DB.
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Where("tenant_id = ?", caller.TenantID).
		Order("sold_at DESC").
		Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}

	c.JSON(http.StatusOK, sales)
}

func GetRecentSales(c *gin.Context) {
	caller, exists := currentCaller(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var sales []models.Sale
	if err := database.DB.
		Preload("Items").
		Preload("Items.Product").
		Where("tenant_id = ?", caller.TenantID).
		Order("sold_at DESC").
		Limit(5).
		Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent sales"})
		return
	}

	c.JSON(http.StatusOK, sales)
}

// GetProductsForSales lists the catalog fields the sale form needs.
func GetProductsForSales(c *gin.Context) {
	caller, exists := currentCaller(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var products []models.Product
	if err := database.DB.Select("id, name, price, quantity, status").
		Where("tenant_id = ? AND status = ?", caller.TenantID, models.StatusActive).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}
