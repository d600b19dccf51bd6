package console

import (
	"context"
	"errors"
	"log"
	"sync"

	"taller_moto/internal/domain/entities"
	"taller_moto/internal/usecase/interfaces"
)

// View selects which console sub-view is active.

type View string

const (
	ViewListado    View = "listado"
	ViewCrear      View = "crear"
	ViewCanceladas View = "canceladas"
	ViewEntregadas View = "entregadas"
)

var ErrUnknownView = errors.New("unknown view")

// ParseView validates a view selector coming from the browser.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewListado, ViewCrear, ViewCanceladas, ViewEntregadas:
		return View(s), nil
	}
	return "", ErrUnknownView
}

// Fallback messages shown when the backend gives none.
const (
	msgBikesLoadFailed  = "Error al cargar las motos"
	msgOrdersLoadFailed = "Error al cargar las órdenes"
)

// Session is the console's application state: the loaded bike and order
// collections, the active view and the loading/error flags. All mutation
// goes through its entry points, guarded by a mutex (the equivalent of the
// browser's single UI task queue).
//
// Each collection carries a generation counter. Starting a load bumps the
// generation; a completion carrying an older generation is discarded, so a
// response that was superseded by a newer load never clobbers state.
type Session struct {
	mu sync.Mutex

	bikes  []entities.Bike
	orders []entities.WorkOrder

	view    View
	loading int
	errMsg  string

	bikeGen  uint64
	orderGen uint64

	bikeGW  interfaces.IBikeGateway
	orderGW interfaces.IWorkOrderGateway
}

func NewSession(bikeGW interfaces.IBikeGateway, orderGW interfaces.IWorkOrderGateway) *Session {
	return &Session{view: ViewListado, bikeGW: bikeGW, orderGW: orderGW}
}

// BeginBikeLoad marks a bike load as in flight and returns the generation
// its completion must present.
func (s *Session) BeginBikeLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bikeGen++
	s.loading++
	return s.bikeGen
}

// ReplaceBikes installs a freshly loaded collection. Stale completions are
// discarded and report false.
func (s *Session) ReplaceBikes(gen uint64, bikes []entities.Bike) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--
	if gen != s.bikeGen {
		log.Printf("[console][session] stale bike load discarded gen=%d current=%d", gen, s.bikeGen)
		return false
	}
	s.bikes = bikes
	return true
}

// FailBikeLoad records a failed bike load. Stale failures are discarded.
func (s *Session) FailBikeLoad(gen uint64, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--
	if gen != s.bikeGen {
		return false
	}
	s.bikes = nil
	s.errMsg = msg
	return true
}

func (s *Session) BeginOrderLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderGen++
	s.loading++
	return s.orderGen
}

func (s *Session) ReplaceOrders(gen uint64, orders []entities.WorkOrder) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--
	if gen != s.orderGen {
		log.Printf("[console][session] stale order load discarded gen=%d current=%d", gen, s.orderGen)
		return false
	}
	s.orders = orders
	return true
}

func (s *Session) FailOrderLoad(gen uint64, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--
	if gen != s.orderGen {
		return false
	}
	s.orders = nil
	s.errMsg = msg
	return true
}

// RefreshBikes reloads the bike collection from the backend.
func (s *Session) RefreshBikes(ctx context.Context) error {
	gen := s.BeginBikeLoad()
	bikes, err := s.bikeGW.ListBikes(ctx)
	if err != nil {
		log.Printf("[console][session] bike load failed err=%v", err)
		s.FailBikeLoad(gen, loadErrorMessage(err, msgBikesLoadFailed))
		return err
	}
	s.ReplaceBikes(gen, bikes)
	return nil
}

// RefreshOrders reloads the order collection from the backend.
func (s *Session) RefreshOrders(ctx context.Context) error {
	gen := s.BeginOrderLoad()
	orders, err := s.orderGW.ListWorkOrders(ctx)
	if err != nil {
		log.Printf("[console][session] order load failed err=%v", err)
		s.FailOrderLoad(gen, loadErrorMessage(err, msgOrdersLoadFailed))
		return err
	}
	s.ReplaceOrders(gen, orders)
	return nil
}

// RefreshAll loads bikes and orders in parallel, the way the console mounts.
// Either side failing sets the error without blocking the other.
func (s *Session) RefreshAll(ctx context.Context) error {
	var wg sync.WaitGroup
	var bikeErr, orderErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		bikeErr = s.RefreshBikes(ctx)
	}()
	go func() {
		defer wg.Done()
		orderErr = s.RefreshOrders(ctx)
	}()
	wg.Wait()

	return errors.Join(bikeErr, orderErr)
}

// Bikes returns a snapshot of the loaded bike collection.
func (s *Session) Bikes() []entities.Bike {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Bike, len(s.bikes))
	copy(out, s.bikes)
	return out
}

// Orders returns a snapshot of the loaded order collection.
func (s *Session) Orders() []entities.WorkOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.WorkOrder, len(s.orders))
	copy(out, s.orders)
	return out
}

// BikeByPlaca resolves a plate against the loaded collection.
func (s *Session) BikeByPlaca(placa string) (entities.Bike, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, bike := range s.bikes {
		if bike.Placa == placa {
			return bike, true
		}
	}
	return entities.Bike{}, false
}

// OrderByID resolves an order id against the loaded collection.
func (s *Session) OrderByID(id int64) (entities.WorkOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.orders {
		if order.ID == id {
			return order, true
		}
	}
	return entities.WorkOrder{}, false
}

// ApplyOrderStatus patches only the status field of a loaded order, leaving
// the rest of the collection untouched. Reports whether the order was found.
func (s *Session) ApplyOrderStatus(id int64, status entities.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return true
		}
	}
	return false
}

// View returns the active sub-view.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SetView switches the active sub-view.
func (s *Session) SetView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
}

// Loading reports whether any load is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

// ErrorMessage returns the current error banner text, empty when none.
func (s *Session) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// ClearError dismisses the error banner.
func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

// loadErrorMessage prefers the backend-provided message over the generic
// fallback.
func loadErrorMessage(err error, fallback string) string {
	var backendErr interface{ BackendMessage() string }
	if errors.As(err, &backendErr) {
		if msg := backendErr.BackendMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}
