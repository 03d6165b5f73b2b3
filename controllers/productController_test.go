package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendastock/vendaStock/controllers"
	"github.com/vendastock/vendaStock/database"
	"github.com/vendastock/vendaStock/models"
)

// setupTestDB points the package-level connection at an in-memory sqlite
// database for the duration of the test.
func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// one connection, or every pooled connection gets its own memory database
	db.DB().SetMaxOpenConns(1)
	db.AutoMigrate(&models.Tenant{}, &models.User{}, &models.Product{}, &models.Sale{}, &models.SaleItem{})
	database.DB = db
	t.Cleanup(func() { db.Close() })
}

// asCaller stands in for the auth middleware.
func asCaller(userID, tenantID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("tenant_id", tenantID)
		c.Set("role", role)
		c.Next()
	}
}

func seedProduct(t *testing.T, tenantID uint, name string, quantity int, status string) *models.Product {
	t.Helper()
	product := &models.Product{
		TenantID: tenantID,
		Name:     name,
		Quantity: quantity,
		Price:    10,
		Status:   status,
	}
	require.NoError(t, database.DB.Create(product).Error)
	return product
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func productRouter(tenantID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asCaller(1, tenantID, models.RoleUser))
	router.GET("/api/products/:id", controllers.GetProduct)
	router.PUT("/api/products/:id", controllers.UpdateProduct)
	router.DELETE("/api/products/:id", controllers.DeleteProduct)
	return router
}

func TestProductTenantIsolation(t *testing.T) {
	setupTestDB(t)
	own := seedProduct(t, 1, "Cafe", 5, models.StatusActive)
	foreign := seedProduct(t, 2, "Cha", 5, models.StatusActive)
	router := productRouter(1)

	t.Run("own product is served", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodGet, fmt.Sprintf("/api/products/%d", own.ID), nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing product is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/products/9999", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("foreign product read is 403", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodGet, fmt.Sprintf("/api/products/%d", foreign.ID), nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("foreign product update is 403 and untouched", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPut, fmt.Sprintf("/api/products/%d", foreign.ID), gin.H{"quantity": 1}))
		assert.Equal(t, http.StatusForbidden, w.Code)

		var reloaded models.Product
		require.NoError(t, database.DB.First(&reloaded, foreign.ID).Error)
		assert.Equal(t, 5, reloaded.Quantity)
	})

	t.Run("foreign product delete is 403 and kept", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodDelete, fmt.Sprintf("/api/products/%d", foreign.ID), nil))
		assert.Equal(t, http.StatusForbidden, w.Code)

		var reloaded models.Product
		assert.NoError(t, database.DB.First(&reloaded, foreign.ID).Error)
	})
}

func TestUpdateProductStatusDerivation(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		status       string
		body         gin.H
		wantStatus   string
		wantQuantity int
	}{
		{
			name:         "restocking without status reactivates inactive",
			quantity:     3,
			status:       models.StatusInactive,
			body:         gin.H{"quantity": 5},
			wantStatus:   models.StatusActive,
			wantQuantity: 5,
		},
		{
			name:         "restocking without status reactivates depleted",
			quantity:     0,
			status:       models.StatusOutOfStock,
			body:         gin.H{"quantity": 4},
			wantStatus:   models.StatusActive,
			wantQuantity: 4,
		},
		{
			name:         "explicit inactive survives restock",
			quantity:     3,
			status:       models.StatusInactive,
			body:         gin.H{"quantity": 5, "status": models.StatusInactive},
			wantStatus:   models.StatusInactive,
			wantQuantity: 5,
		},
		{
			name:         "depleting forces out of stock",
			quantity:     5,
			status:       models.StatusActive,
			body:         gin.H{"quantity": 0},
			wantStatus:   models.StatusOutOfStock,
			wantQuantity: 0,
		},
		{
			name:         "status only update passes through",
			quantity:     5,
			status:       models.StatusActive,
			body:         gin.H{"status": models.StatusInactive},
			wantStatus:   models.StatusInactive,
			wantQuantity: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestDB(t)
			product := seedProduct(t, 1, "Cafe", tt.quantity, tt.status)
			router := productRouter(1)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPut, fmt.Sprintf("/api/products/%d", product.ID), tt.body))
			require.Equal(t, http.StatusOK, w.Code)

			var reloaded models.Product
			require.NoError(t, database.DB.First(&reloaded, product.ID).Error)
			assert.Equal(t, tt.wantStatus, reloaded.Status)
			assert.Equal(t, tt.wantQuantity, reloaded.Quantity)
		})
	}
}
