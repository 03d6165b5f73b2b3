package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Sale is immutable once created: there is no update or delete path for it.
type Sale struct {
	gorm.Model
	TenantID    uint       `json:"tenant_id" gorm:"not null;index"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	User        *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Reference   string     `json:"reference" gorm:"not null;unique"`
	ClientName  string     `json:"client_name" gorm:"not null"`
	ClientPhone string     `json:"client_phone"`
	Total       float64    `json:"total"`
	Items       []SaleItem `json:"items" gorm:"foreignKey:SaleID"`
	SoldAt      time.Time  `json:"sold_at" gorm:"index"`
}
