package database

import (
	"errors"

	"github.com/jinzhu/gorm"

	"github.com/vendastock/vendaStock/engine"
	"github.com/vendastock/vendaStock/models"
)

// NewUnitOfWork wraps a gorm connection as the engine's unit-of-work contract.
func NewUnitOfWork(db *gorm.DB) engine.UnitOfWork {
	return &gormUnitOfWork{db: db}
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func (u *gormUnitOfWork) Begin() (engine.Tx, error) {
	tx := u.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTx{tx: tx}, nil
}

type gormTx struct {
	tx *gorm.DB
}

// CreateSale persists the sale and, through gorm's association handling, all
// of its items in the same insert path.
func (t *gormTx) CreateSale(sale *models.Sale) error {
	return t.tx.Create(sale).Error
}

func (t *gormTx) FindProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := t.tx.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, engine.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (t *gormTx) SaveProduct(product *models.Product) error {
	return t.tx.Save(product).Error
}

func (t *gormTx) Commit() error {
	return t.tx.Commit().Error
}

func (t *gormTx) Rollback() error {
	return t.tx.Rollback().Error
}
