package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/vendastock/vendaStock/database"
	"github.com/vendastock/vendaStock/engine"
	"github.com/vendastock/vendaStock/models"
)

func handleProductError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// findTenantProduct loads a product by id and enforces tenant ownership:
// 404 when the product does not exist, 403 when it belongs to another tenant.
func findTenantProduct(c *gin.Context, tenantID uint, id string) (*models.Product, bool) {
	var product models.Product
	if err := database.DB.Where("id = ?", id).First(&product).Error; err != nil {
		handleProductError(c, err)
		return nil, false
	}
	if product.TenantID != tenantID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return nil, false
	}
	return &product, true
}

func GetProducts(c *gin.Context) {
	caller, exists := currentCaller(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	query := database.DB.Where("tenant_id = ?", caller.TenantID)
	if status := c.Query("status"); status != "" && status != "todos" {
		query = query.Where("status = ?", status)
	}

	var products []models.Product
	if err := query.Order("quantity DESC").Order("name ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

func GetProduct(c *gin.Context) {
	caller, exists := currentCaller(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	product, ok := findTenantProduct(c, caller.TenantID, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, product)
}

func CreateProduct(c *gin.Context) {
	caller, exists := currentCaller(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Name     string  `json:"name" binding:"required"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
		Cost     float64 `json:"cost"`
		Image    string  `json:"image"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		TenantID: caller.TenantID,
		Name:     input.Name,
		Quantity: input.Quantity,
		Price:    input.Price,
		Cost:     input.Cost,
		Image:    input.Image,
		Status:   engine.DeriveStatus(input.Quantity, ""),
	}

	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func UpdateProduct(c *gin.Context) {
	caller, exists := currentCaller(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	product, ok := findTenantProduct(c, caller.TenantID, c.Param("id"))
	if !ok {
		return
	}

	var input struct {
		Name     *string  `json:"name"`
		Quantity *int     `json:"quantity"`
		Price    *float64 `json:"price"`
		Cost     *float64 `json:"cost"`
		Status   *string  `json:"status"`
		Image    *string  `json:"image"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Cost != nil {
		product.Cost = *input.Cost
	}
	if input.Image != nil {
		product.Image = *input.Image
	}

	// The requested status is what the payload carries, not what is stored:
	// restocking with no status in the request reactivates a depleted or
	// inactive product.
	requested := ""
	if input.Status != nil {
		requested = *input.Status
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
		product.Status = engine.DeriveStatus(*input.Quantity, requested)
	} else if input.Status != nil {
		product.Status = requested
	}

	if err := database.DB.Save(product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

func DeleteProduct(c *gin.Context) {
	caller, exists := currentCaller(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	product, ok := findTenantProduct(c, caller.TenantID, c.Param("id"))
	if !ok {
		return
	}

	if err := database.DB.Delete(product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// getting all low-stock items
func LowStockItems(c *gin.Context) {
	caller, exists := currentCaller(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lowStockThreshold := 10
	var products []models.Product
	if err := database.DB.
		Where("tenant_id = ? AND quantity <= ?", caller.TenantID, lowStockThreshold).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch low stock items"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// getting total value of products in the inventory
func TotalValue(c *gin.Context) {
	caller, exists := currentCaller(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var totalValue float64
	err := database.DB.Raw(
		"SELECT COALESCE(SUM(price * quantity), 0) AS total_value FROM products WHERE tenant_id = ? AND deleted_at IS NULL",
		caller.TenantID,
	).Row().Scan(&totalValue)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalValue": totalValue})
}
