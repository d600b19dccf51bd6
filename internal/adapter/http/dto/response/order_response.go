package response

import (
	"taller_moto/internal/domain/entities"
)

type OrderItemResponse struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Count       int     `json:"count"`
	UnitValue   float64 `json:"unitValue"`
	Subtotal    float64 `json:"subtotal"`
}

type ClienteResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Email    string `json:"email,omitempty"`
}

// OrderResponse mirrors a work order for the console UI. TotalFormatted is
// the display string ("$55.00", exact two decimals); Total stays numeric for
// sorting. AllowedNext drives which transition buttons the UI renders.
type OrderResponse struct {
	ID               int64               `json:"id"`
	MotoPlaca        string              `json:"motoPlaca"`
	EntryDate        string              `json:"entryDate"`
	FaultDescription string              `json:"faultDescription"`
	Status           string              `json:"status"`
	Total            float64             `json:"total"`
	TotalFormatted   string              `json:"totalFormatted"`
	AllowedNext      []string            `json:"allowedNext"`
	Items            []OrderItemResponse `json:"items,omitempty"`
	Cliente          *ClienteResponse    `json:"cliente,omitempty"`
}

func FromWorkOrder(o entities.WorkOrder) OrderResponse {
	res := OrderResponse{
		ID:               o.ID,
		MotoPlaca:        o.MotoPlaca,
		EntryDate:        o.EntryDate,
		FaultDescription: o.FaultDescription,
		Status:           string(o.Status),
		Total:            o.Total.InexactFloat64(),
		TotalFormatted:   "$" + o.Total.StringFixed(2),
		AllowedNext:      statusNames(entities.AllowedNext(o.Status)),
	}

	for _, item := range o.Items {
		res.Items = append(res.Items, OrderItemResponse{
			ID:          item.ID,
			Type:        string(item.Type),
			Description: item.Description,
			Count:       item.Count,
			UnitValue:   item.UnitValue.InexactFloat64(),
			Subtotal:    item.Subtotal().InexactFloat64(),
		})
	}

	if o.Cliente != nil {
		res.Cliente = &ClienteResponse{
			ID:       o.Cliente.ID,
			Nombre:   o.Cliente.Nombre,
			Telefono: o.Cliente.Telefono,
			Email:    o.Cliente.Email,
		}
	}
	return res
}

func FromWorkOrders(orders []entities.WorkOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromWorkOrder(o))
	}
	return out
}

func statusNames(statuses []entities.OrderStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
