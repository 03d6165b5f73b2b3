package models

import "github.com/jinzhu/gorm"

type Tenant struct {
	gorm.Model
	Name     string     `json:"name" gorm:"not null;unique"`
	Users    []*User    `json:"-" gorm:"foreignKey:TenantID"`
	Products []*Product `json:"-" gorm:"foreignKey:TenantID"`
	Sales    []*Sale    `json:"-" gorm:"foreignKey:TenantID"`
}
