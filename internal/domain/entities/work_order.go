package entities

import "github.com/shopspring/decimal"

// OrderStatus represents the lifecycle of a work order (orden de trabajo).
//
// Domain notes:
//   - The workshop backend is the source of truth for order state; the
//     console validates transitions before dispatch as defense in depth.
//   - Wire values are the backend's Spanish statuses.

type OrderStatus string

const (
	OrderStatusRecibida    OrderStatus = "RECIBIDA"
	OrderStatusDiagnostico OrderStatus = "DIAGNOSTICO"
	OrderStatusEnProceso   OrderStatus = "EN_PROCESO"
	OrderStatusLista       OrderStatus = "LISTA"
	OrderStatusEntregada   OrderStatus = "ENTREGADA"
	OrderStatusCancelada   OrderStatus = "CANCELADA"
)

// validTransitions is the fixed workflow DAG. Terminal states map to nil and
// a status never re-enters RECIBIDA.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusRecibida:    {OrderStatusDiagnostico, OrderStatusCancelada},
	OrderStatusDiagnostico: {OrderStatusEnProceso, OrderStatusCancelada},
	OrderStatusEnProceso:   {OrderStatusLista, OrderStatusCancelada},
	OrderStatusLista:       {OrderStatusEntregada, OrderStatusCancelada},
	OrderStatusEntregada:   nil,
	OrderStatusCancelada:   nil,
}

// AllowedNext returns the legal target statuses from the given status.
// Unknown statuses have no transitions.
func AllowedNext(status OrderStatus) []OrderStatus {
	next := validTransitions[status]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

// ValidOrderStatus reports whether the value is a known workflow status.
func ValidOrderStatus(status OrderStatus) bool {
	_, ok := validTransitions[status]
	return ok
}

// CanTransition reports whether from -> to is a legal transition.
func CanTransition(from, to OrderStatus) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func IsTerminal(status OrderStatus) bool {
	next, ok := validTransitions[status]
	return ok && len(next) == 0
}

// WorkOrder is a repair order as returned by the workshop backend.
//
// Total is computed by the console from the draft's line items before
// submission and trusted from the backend afterwards. Items are frozen once
// the order exists; this console never edits them.
type WorkOrder struct {
	ID               int64           `json:"id"`
	MotoPlaca        string          `json:"motoPlaca"`
	EntryDate        string          `json:"entryDate"`
	FaultDescription string          `json:"faultDescription"`
	Status           OrderStatus     `json:"status"`
	Total            decimal.Decimal `json:"total"`
	Items            []LineItem      `json:"items,omitempty"`
	ClienteID        int64           `json:"clienteId"`
	Cliente          *Cliente        `json:"cliente,omitempty"`
}

// OrderSubmission is the creation payload for a new work order. Items stay
// local to the draft; the backend only receives the computed total.
type OrderSubmission struct {
	MotoPlaca        string
	EntryDate        string
	FaultDescription string
	Status           OrderStatus
	Total            decimal.Decimal
}
