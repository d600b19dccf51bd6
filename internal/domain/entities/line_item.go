package entities

import "github.com/shopspring/decimal"

// ItemType distinguishes labor from parts on a work order.

type ItemType string

const (
	ItemTypeRepuesto ItemType = "REPUESTO"
	ItemTypeManoObra ItemType = "MANO_OBRA"
)

// ValidItemType reports whether t is a known line item type.
func ValidItemType(t ItemType) bool {
	return t == ItemTypeRepuesto || t == ItemTypeManoObra
}

// LineItem is a labor or part entry owned by exactly one work order.
type LineItem struct {
	ID          int64           `json:"id"`
	Type        ItemType        `json:"type"`
	Description string          `json:"description"`
	Count       int             `json:"count"`
	UnitValue   decimal.Decimal `json:"unitValue"`
}

// Subtotal is Count x UnitValue, exact.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitValue.Mul(decimal.NewFromInt(int64(i.Count)))
}
