package engine

import (
	"errors"

	"github.com/vendastock/vendaStock/models"
)

// ErrProductNotFound is returned by Tx.FindProduct when no product exists with
// the given id. The engine treats it as a skip, not a failure.
var ErrProductNotFound = errors.New("product not found")

// UnitOfWork opens atomic transactions against the persistence store.
type UnitOfWork interface {
	Begin() (Tx, error)
}

// Tx is one atomic unit of work. Every operation between Begin and Commit
// either persists together or, after Rollback, not at all.
type Tx interface {
	// CreateSale inserts the sale together with all of its items.
	CreateSale(sale *models.Sale) error
	FindProduct(id uint) (*models.Product, error)
	SaveProduct(product *models.Product) error
	Commit() error
	Rollback() error
}
