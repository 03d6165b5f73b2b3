package models

import (
	"github.com/jinzhu/gorm"
)

// SaleItem captures the unit price at the time of sale. The catalog price may
// change afterwards without affecting recorded sales.
type SaleItem struct {
	gorm.Model
	SaleID    uint     `json:"sale_id" gorm:"not null;index"`
	ProductID uint     `json:"product_id" gorm:"not null;index"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int      `json:"quantity" gorm:"not null"`
	Price     float64  `json:"price" gorm:"not null"`
}
