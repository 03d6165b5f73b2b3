// Package engine records sales atomically against the product catalog:
// one sale with its line items, one stock decrement per still-existing
// product, all inside a single database transaction.
package engine

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vendastock/vendaStock/models"
)

var (
	ErrNoCaller          = errors.New("a resolved tenant-scoped caller is required")
	ErrEmptyClientName   = errors.New("client name is required")
	ErrNoLineItems       = errors.New("a sale requires at least one line item")
	ErrInvalidQuantity   = errors.New("line item quantity must be greater than zero")
	ErrNegativePrice     = errors.New("line item price cannot be negative")
	ErrTransactionFailed = errors.New("sale transaction failed")
)

// Caller is the authenticated identity on whose behalf a sale is recorded.
// It is passed explicitly; the engine reads no ambient session state.
type Caller struct {
	UserID   uint
	TenantID uint
	Role     string
}

// LineItem is one (product, quantity, unit price) entry of a sale request.
// The price is trusted as given and captured on the sale item; it is not
// re-read from the catalog.
type LineItem struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Engine struct {
	store UnitOfWork
	log   *logrus.Logger
}

func New(store UnitOfWork, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{store: store, log: log}
}

// Total sums quantity × unit price over the items with two-decimal currency
// semantics: exact decimal arithmetic, a single round on the final value.
func Total(items []LineItem) float64 {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	total, _ := sum.Round(2).Float64()
	return total
}

// RecordSale persists one sale with its line items and decrements the stock of
// every referenced product that still exists, in a single atomic unit of work.
//
// A line item whose product has been deleted still records its item and
// revenue but adjusts no stock. Oversell is not rejected: stock clamps at
// zero. On any persistence error the whole unit rolls back and the opaque
// ErrTransactionFailed is returned; nothing partial is ever observable.
func (e *Engine) RecordSale(caller Caller, clientName, clientPhone string, items []LineItem) (*models.Sale, error) {
	if caller.UserID == 0 || caller.TenantID == 0 {
		return nil, ErrNoCaller
	}
	if strings.TrimSpace(clientName) == "" {
		return nil, ErrEmptyClientName
	}
	if len(items) == 0 {
		return nil, ErrNoLineItems
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if item.Price < 0 {
			return nil, ErrNegativePrice
		}
	}

	sale := &models.Sale{
		TenantID:    caller.TenantID,
		UserID:      caller.UserID,
		Reference:   uuid.NewString(),
		ClientName:  clientName,
		ClientPhone: clientPhone,
		Total:       Total(items),
		SoldAt:      time.Now(),
	}
	for _, item := range items {
		sale.Items = append(sale.Items, models.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	tx, err := e.store.Begin()
	if err != nil {
		e.log.WithError(err).Error("could not open sale transaction")
		return nil, ErrTransactionFailed
	}

	if err := tx.CreateSale(sale); err != nil {
		tx.Rollback()
		e.log.WithError(err).Error("sale insert failed")
		return nil, ErrTransactionFailed
	}

	for _, item := range items {
		product, err := tx.FindProduct(item.ProductID)
		if errors.Is(err, ErrProductNotFound) {
			// Deliberate leniency: the sale keeps the item and its revenue,
			// but there is no stock left to adjust for a deleted product.
			e.log.WithFields(logrus.Fields{
				"sale":    sale.Reference,
				"product": item.ProductID,
			}).Warn("sale references a deleted product, stock not adjusted")
			continue
		}
		if err != nil {
			tx.Rollback()
			e.log.WithError(err).Error("product lookup failed")
			return nil, ErrTransactionFailed
		}

		quantity := product.Quantity - item.Quantity
		if quantity < 0 {
			quantity = 0
		}
		product.Quantity = quantity
		product.Status = DeriveStatus(quantity, product.Status)

		if err := tx.SaveProduct(product); err != nil {
			tx.Rollback()
			e.log.WithError(err).Error("stock update failed")
			return nil, ErrTransactionFailed
		}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		e.log.WithError(err).Error("sale commit failed")
		return nil, ErrTransactionFailed
	}

	return sale, nil
}
