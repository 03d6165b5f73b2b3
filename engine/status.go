package engine

import "github.com/vendastock/vendaStock/models"

// DeriveStatus resolves a product's lifecycle status from its quantity and the
// status requested for it (pass "" when none was requested).
//
// A depleted product is always "fora de estoque". Restocking a depleted
// product reactivates it unless a different status was explicitly requested,
// so "inativo" survives quantity changes while the product remains stocked.
func DeriveStatus(quantity int, requested string) string {
	if quantity <= 0 {
		return models.StatusOutOfStock
	}
	if requested == "" || requested == models.StatusOutOfStock {
		return models.StatusActive
	}
	return requested
}
