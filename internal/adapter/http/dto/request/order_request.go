package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"taller_moto/internal/domain/entities"
	"taller_moto/internal/usecase"
)

var (
	ErrUnknownStatus = errors.New("unknown order status")
)

type OrderItemRequest struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Count       int     `json:"count"`
	UnitValue   float64 `json:"unitValue"`
}

// CreateOrderRequest is the order creation payload sent by the console UI.
// The items are the draft's ledger; the use case computes the total from
// them, the browser never sends one.
type CreateOrderRequest struct {
	MotoPlaca        string             `json:"motoPlaca"`
	EntryDate        string             `json:"entryDate"`
	FaultDescription string             `json:"faultDescription"`
	Items            []OrderItemRequest `json:"items"`
}

// ToDraft rebuilds the draft's item ledger and wraps it with the order
// fields. Item validation errors surface through the ledger's sentinels.
func (r CreateOrderRequest) ToDraft() (usecase.OrderDraft, error) {
	ledger := usecase.NewItemLedger()
	for _, item := range r.Items {
		kind := entities.ItemType(strings.TrimSpace(item.Type))
		unitValue := decimal.NewFromFloat(item.UnitValue)
		if _, err := ledger.AddItem(kind, item.Description, item.Count, unitValue); err != nil {
			return usecase.OrderDraft{}, err
		}
	}

	return usecase.OrderDraft{
		MotoPlaca:        r.MotoPlaca,
		EntryDate:        r.EntryDate,
		FaultDescription: r.FaultDescription,
		Items:            ledger,
	}, nil
}

// ChangeStatusRequest is the workflow transition payload.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ResolveStatus validates the requested status against the known workflow
// statuses before the transition itself is checked.
func (r ChangeStatusRequest) ResolveStatus() (entities.OrderStatus, error) {
	status := entities.OrderStatus(strings.TrimSpace(r.Status))
	if !entities.ValidOrderStatus(status) {
		return "", ErrUnknownStatus
	}
	return status, nil
}
