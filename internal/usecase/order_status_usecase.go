package usecase

import (
	"context"
	"errors"

	"taller_moto/internal/domain/entities"
	"taller_moto/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound     = errors.New("work order not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// OrderStore is the loaded order collection the controller reconciles
// against. Satisfied by *console.Session.
type OrderStore interface {
	OrderByID(id int64) (entities.WorkOrder, bool)
	ApplyOrderStatus(id int64, status entities.OrderStatus) bool
}

// IOrderStatusUseCase applies workflow transitions to existing orders.

type IOrderStatusUseCase interface {
	ChangeStatus(ctx context.Context, orderID int64, requested entities.OrderStatus) (entities.OrderStatus, error)
}

type OrderStatusUseCase struct {
	gateway interfaces.IWorkOrderGateway
	store   OrderStore
}

var _ IOrderStatusUseCase = (*OrderStatusUseCase)(nil)

func NewOrderStatusUseCase(gateway interfaces.IWorkOrderGateway, store OrderStore) *OrderStatusUseCase {
	return &OrderStatusUseCase{gateway: gateway, store: store}
}

// ChangeStatus validates the transition against the loaded order before any
// request is sent, then patches only the status field of the in-memory order
// with the value echoed by the backend. The backend remains the source of
// truth and may reject independently.
func (u *OrderStatusUseCase) ChangeStatus(ctx context.Context, orderID int64, requested entities.OrderStatus) (entities.OrderStatus, error) {
	order, ok := u.store.OrderByID(orderID)
	if !ok {
		return "", ErrOrderNotFound
	}
	if !entities.CanTransition(order.Status, requested) {
		return "", ErrInvalidTransition
	}

	applied, err := u.gateway.ChangeStatus(ctx, orderID, requested)
	if err != nil {
		return "", err
	}

	u.store.ApplyOrderStatus(orderID, applied)
	return applied, nil
}
