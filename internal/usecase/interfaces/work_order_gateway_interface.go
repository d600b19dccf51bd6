package interfaces

import (
	"context"
	"taller_moto/internal/domain/entities"
)

// IWorkOrderGateway abstracts the workshop backend endpoints for work orders.
//
// ChangeStatus returns the status echoed by the backend, which is the
// authoritative value (the backend may apply rules of its own).

type IWorkOrderGateway interface {
	ListWorkOrders(ctx context.Context) ([]entities.WorkOrder, error)
	CreateWorkOrder(ctx context.Context, sub entities.OrderSubmission) (entities.WorkOrder, error)
	ChangeStatus(ctx context.Context, orderID int64, status entities.OrderStatus) (entities.OrderStatus, error)
}
