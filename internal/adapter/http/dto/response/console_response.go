package response

import (
	"github.com/shopspring/decimal"

	"taller_moto/internal/domain/entities"
)

// StateResponse is the console's UI state: active view, in-flight loads and
// the current error banner (empty when none).
type StateResponse struct {
	View    string `json:"view"`
	Loading bool   `json:"loading"`
	Error   string `json:"error"`
}

// SummaryResponse is the dashboard header: totals per workflow status plus
// the registered bike count.
type SummaryResponse struct {
	Bikes         int            `json:"bikes"`
	Orders        int            `json:"orders"`
	ByStatus      map[string]int `json:"byStatus"`
	ActiveOrders  int            `json:"activeOrders"`
	ClosedOrders  int            `json:"closedOrders"`
	TotalDelivery string         `json:"deliveredTotal"`
}

// BuildSummary aggregates the loaded collections. Delivered revenue is the
// exact decimal sum over ENTREGADA orders, formatted to two decimals.
func BuildSummary(bikes []entities.Bike, orders []entities.WorkOrder) SummaryResponse {
	summary := SummaryResponse{
		Bikes:    len(bikes),
		Orders:   len(orders),
		ByStatus: make(map[string]int),
	}

	delivered := decimal.Zero
	for _, o := range orders {
		summary.ByStatus[string(o.Status)]++
		if entities.IsTerminal(o.Status) {
			summary.ClosedOrders++
		} else {
			summary.ActiveOrders++
		}
		if o.Status == entities.OrderStatusEntregada {
			delivered = delivered.Add(o.Total)
		}
	}
	summary.TotalDelivery = "$" + delivered.StringFixed(2)
	return summary
}
