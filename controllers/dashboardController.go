package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendastock/vendaStock/database"
	"github.com/vendastock/vendaStock/models"
)

// GetDashboardStats aggregates the numbers the dashboard cards show.
func GetDashboardStats(c *gin.Context) {
	caller, exists := currentCaller(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var productCount int64
	if err := database.DB.Model(&models.Product{}).
		Where("tenant_id = ?", caller.TenantID).
		Count(&productCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var salesCount int64
	if err := database.DB.Model(&models.Sale{}).
		Where("tenant_id = ?", caller.TenantID).
		Count(&salesCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var lowStockCount int64
	if err := database.DB.Model(&models.Product{}).
		Where("tenant_id = ? AND quantity <= ?", caller.TenantID, 10).
		Count(&lowStockCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var totalSales float64
	if err := database.DB.Raw(
		"SELECT COALESCE(SUM(total), 0) FROM sales WHERE tenant_id = ? AND deleted_at IS NULL",
		caller.TenantID,
	).Row().Scan(&totalSales); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var inventoryValue float64
	if err := database.DB.Raw(
		"SELECT COALESCE(SUM(price * quantity), 0) FROM products WHERE tenant_id = ? AND deleted_at IS NULL",
		caller.TenantID,
	).Row().Scan(&inventoryValue); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"productCount":   productCount,
		"salesCount":     salesCount,
		"totalSales":     totalSales,
		"lowStockCount":  lowStockCount,
		"inventoryValue": inventoryValue,
	})
}
