package models

import (
	"github.com/jinzhu/gorm"
)

const (
	RoleAdmin = "administrador"
	RoleUser  = "usuario"
)

type User struct {
	gorm.Model
	TenantID uint    `json:"tenant_id" gorm:"not null;index"`
	Tenant   *Tenant `json:"-" gorm:"foreignKey:TenantID"`
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required" gorm:"unique;not null"`
	Password string  `json:"-" gorm:"not null"`
	Phone    string  `json:"phone"`
	Role     string  `json:"role" gorm:"default:'usuario'"`
}
