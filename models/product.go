package models

import (
	"github.com/jinzhu/gorm"
)

// Product lifecycle statuses. A quantity of zero forces StatusOutOfStock;
// StatusInactive can only be set explicitly while the product is stocked.
const (
	StatusActive     = "ativo"
	StatusInactive   = "inativo"
	StatusOutOfStock = "fora de estoque"
)

type Product struct {
	gorm.Model
	TenantID uint       `json:"tenant_id" gorm:"not null;index"`
	Name     string     `json:"name" gorm:"not null"`
	Quantity int        `json:"quantity"`
	Price    float64    `json:"price"`
	Cost     float64    `json:"cost"`
	Status   string     `json:"status" gorm:"default:'ativo'"`
	Image    string     `json:"image"`
	Items    []SaleItem `json:"-" gorm:"foreignKey:ProductID"`
}
