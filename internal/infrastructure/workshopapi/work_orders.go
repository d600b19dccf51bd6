package workshopapi

import (
	"context"
	"fmt"
	"net/http"

	"taller_moto/internal/domain/entities"
	"taller_moto/internal/usecase/interfaces"
)

var _ interfaces.IWorkOrderGateway = (*Client)(nil)

type lineItemDTO struct {
	ID          flexInt     `json:"id"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Count       flexInt     `json:"count"`
	UnitValue   flexDecimal `json:"unitValue"`
}

type clienteDTO struct {
	ID       flexInt    `json:"id"`
	Nombre   string     `json:"nombre"`
	Telefono flexString `json:"telefono"`
	Email    string     `json:"email"`
}

type workOrderDTO struct {
	ID               flexInt       `json:"id"`
	MotoPlaca        string        `json:"motoPlaca"`
	EntryDate        string        `json:"entryDate"`
	FaultDescription string        `json:"faultDescription"`
	Status           string        `json:"status"`
	Total            flexDecimal   `json:"total"`
	ClienteID        flexInt       `json:"clienteId"`
	Cliente          *clienteDTO   `json:"cliente"`
	Items            []lineItemDTO `json:"items"`
}

func (d workOrderDTO) toEntity() entities.WorkOrder {
	order := entities.WorkOrder{
		ID:               int64(d.ID),
		MotoPlaca:        d.MotoPlaca,
		EntryDate:        d.EntryDate,
		FaultDescription: d.FaultDescription,
		Status:           entities.OrderStatus(d.Status),
		Total:            d.Total.Decimal,
		ClienteID:        int64(d.ClienteID),
	}
	if d.Cliente != nil {
		order.Cliente = &entities.Cliente{
			ID:       int64(d.Cliente.ID),
			Nombre:   d.Cliente.Nombre,
			Telefono: string(d.Cliente.Telefono),
			Email:    d.Cliente.Email,
		}
	}
	for _, item := range d.Items {
		order.Items = append(order.Items, entities.LineItem{
			ID:          int64(item.ID),
			Type:        entities.ItemType(item.Type),
			Description: item.Description,
			Count:       int(item.Count),
			UnitValue:   item.UnitValue.Decimal,
		})
	}
	return order
}

type createWorkOrderDTO struct {
	MotoPlaca        string  `json:"motoPlaca"`
	EntryDate        string  `json:"entryDate"`
	FaultDescription string  `json:"faultDescription"`
	Status           string  `json:"status"`
	Total            float64 `json:"total"`
}

// ListWorkOrders fetches the full order collection (GET /workOrders).
func (c *Client) ListWorkOrders(ctx context.Context) ([]entities.WorkOrder, error) {
	var resp struct {
		Data []workOrderDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/workOrders", nil, &resp); err != nil {
		return nil, err
	}

	orders := make([]entities.WorkOrder, 0, len(resp.Data))
	for _, d := range resp.Data {
		orders = append(orders, d.toEntity())
	}
	return orders, nil
}

// CreateWorkOrder submits a new order (POST /workOrders). Items stay local
// to the draft; the backend receives only the computed total.
func (c *Client) CreateWorkOrder(ctx context.Context, sub entities.OrderSubmission) (entities.WorkOrder, error) {
	payload := createWorkOrderDTO{
		MotoPlaca:        sub.MotoPlaca,
		EntryDate:        sub.EntryDate,
		FaultDescription: sub.FaultDescription,
		Status:           string(sub.Status),
		Total:            sub.Total.InexactFloat64(),
	}

	var resp struct {
		Data workOrderDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/workOrders", payload, &resp); err != nil {
		return entities.WorkOrder{}, err
	}
	return resp.Data.toEntity(), nil
}

// ChangeStatus applies a workflow transition (PATCH /workOrders/{id}/status)
// and returns the status the backend actually applied.
func (c *Client) ChangeStatus(ctx context.Context, orderID int64, status entities.OrderStatus) (entities.OrderStatus, error) {
	payload := struct {
		Status string `json:"status"`
	}{Status: string(status)}

	var resp struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	path := fmt.Sprintf("/workOrders/%d/status", orderID)
	if err := c.do(ctx, http.MethodPatch, path, payload, &resp); err != nil {
		return "", err
	}
	return entities.OrderStatus(resp.Data.Status), nil
}
