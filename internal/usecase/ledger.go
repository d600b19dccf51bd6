package usecase

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"taller_moto/internal/domain/entities"
)

var (
	ErrItemType        = errors.New("invalid item type")
	ErrItemDescription = errors.New("item description is required")
	ErrItemCount       = errors.New("item count must be > 0")
	ErrItemUnitValue   = errors.New("item unit value must be >= 0")
)

// LedgerItem is a line item living only in an order draft. It carries a
// locally-unique id so the console can remove it before submission; the
// backend assigns real ids once the order is created.
type LedgerItem struct {
	ID          string
	Type        entities.ItemType
	Description string
	Count       int
	UnitValue   decimal.Decimal
}

// Subtotal is Count x UnitValue, exact.
func (i LedgerItem) Subtotal() decimal.Decimal {
	return i.UnitValue.Mul(decimal.NewFromInt(int64(i.Count)))
}

// ItemLedger accumulates the line items of a draft order in insertion order.
// It is not safe for concurrent use; a ledger belongs to a single draft.
type ItemLedger struct {
	items []LedgerItem
}

func NewItemLedger() *ItemLedger {
	return &ItemLedger{}
}

// AddItem validates and appends a line item, returning its assigned id.
func (l *ItemLedger) AddItem(kind entities.ItemType, description string, count int, unitValue decimal.Decimal) (LedgerItem, error) {
	if !entities.ValidItemType(kind) {
		return LedgerItem{}, ErrItemType
	}
	if strings.TrimSpace(description) == "" {
		return LedgerItem{}, ErrItemDescription
	}
	if count <= 0 {
		return LedgerItem{}, ErrItemCount
	}
	if unitValue.IsNegative() {
		return LedgerItem{}, ErrItemUnitValue
	}

	item := LedgerItem{
		ID:          uuid.NewString(),
		Type:        kind,
		Description: description,
		Count:       count,
		UnitValue:   unitValue,
	}
	l.items = append(l.items, item)
	return item, nil
}

// RemoveItem removes the item with the given id. Removing an unknown id is a
// no-op.
func (l *ItemLedger) RemoveItem(id string) {
	for i, item := range l.items {
		if item.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the current items in insertion order.
func (l *ItemLedger) Items() []LedgerItem {
	out := make([]LedgerItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items in the ledger.
func (l *ItemLedger) Len() int {
	return len(l.items)
}

// Total returns the exact sum of count x unit value over all items. Rounding
// to two decimals happens at presentation time only.
func (l *ItemLedger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.items {
		total = total.Add(item.Subtotal())
	}
	return total
}
