package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"taller_moto/internal/domain/entities"
	"taller_moto/internal/usecase/interfaces"
)

var (
	ErrMissingPlaca    = errors.New("placa is required")
	ErrUnknownPlaca    = errors.New("placa does not match a registered bike")
	ErrMissingFault    = errors.New("fault description is required")
	ErrEmptyLedger     = errors.New("at least one item is required")
	ErrInvalidPlaca    = errors.New("placa must match ABC-123")
	ErrMissingBrand    = errors.New("brand is required")
	ErrMissingModel    = errors.New("model is required")
	ErrMissingCylinder = errors.New("cylinder is required")
	ErrInvalidNombre   = errors.New("client name must have at least 3 characters")
	ErrInvalidTelefono = errors.New("client phone must have exactly 10 digits")
	ErrInvalidEmail    = errors.New("client email is invalid")
)

var (
	placaPattern    = regexp.MustCompile(`^[A-Z]{3}-[0-9]{3}$`)
	telefonoPattern = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// OrderDraft is the validated input for creating a work order. Items live in
// the draft's ledger until submission; the backend receives only the total.
type OrderDraft struct {
	MotoPlaca        string
	EntryDate        string // YYYY-MM-DD, defaults to today when empty
	FaultDescription string
	Items            *ItemLedger
}

// BikeSource resolves plates against the currently loaded bike collection.
// Satisfied by *console.Session.
type BikeSource interface {
	BikeByPlaca(placa string) (entities.Bike, bool)
}

// IOrderDraftUseCase exposes the order creation flow, including the inline
// bike+client registration reachable from the draft form.

type IOrderDraftUseCase interface {
	Submit(ctx context.Context, draft OrderDraft) (entities.WorkOrder, error)
	RegisterBike(ctx context.Context, reg entities.BikeRegistration) (entities.Bike, error)
}

type OrderDraftUseCase struct {
	orders interfaces.IWorkOrderGateway
	bikes  interfaces.IBikeGateway
	known  BikeSource
}

var _ IOrderDraftUseCase = (*OrderDraftUseCase)(nil)

func NewOrderDraftUseCase(orders interfaces.IWorkOrderGateway, bikes interfaces.IBikeGateway, known BikeSource) *OrderDraftUseCase {
	return &OrderDraftUseCase{orders: orders, bikes: bikes, known: known}
}

// Submit validates the draft, computes its total from the ledger and sends
// the creation request. Validation failures never reach the network.
func (u *OrderDraftUseCase) Submit(ctx context.Context, draft OrderDraft) (entities.WorkOrder, error) {
	placa := strings.TrimSpace(draft.MotoPlaca)
	if placa == "" {
		return entities.WorkOrder{}, ErrMissingPlaca
	}
	if _, ok := u.known.BikeByPlaca(placa); !ok {
		return entities.WorkOrder{}, ErrUnknownPlaca
	}
	if strings.TrimSpace(draft.FaultDescription) == "" {
		return entities.WorkOrder{}, ErrMissingFault
	}
	if draft.Items == nil || draft.Items.Len() == 0 {
		return entities.WorkOrder{}, ErrEmptyLedger
	}

	entryDate := strings.TrimSpace(draft.EntryDate)
	if entryDate == "" {
		entryDate = time.Now().UTC().Format("2006-01-02")
	}

	sub := entities.OrderSubmission{
		MotoPlaca:        placa,
		EntryDate:        entryDate,
		FaultDescription: draft.FaultDescription,
		Status:           entities.OrderStatusRecibida,
		Total:            draft.Items.Total(),
	}
	return u.orders.CreateWorkOrder(ctx, sub)
}

// RegisterBike validates and creates a bike together with its client. The
// caller refreshes the bike collection from the backend afterwards instead
// of inserting locally, so server-assigned fields never diverge.
func (u *OrderDraftUseCase) RegisterBike(ctx context.Context, reg entities.BikeRegistration) (entities.Bike, error) {
	reg.Placa = strings.TrimSpace(reg.Placa)
	if !placaPattern.MatchString(reg.Placa) {
		return entities.Bike{}, ErrInvalidPlaca
	}
	if strings.TrimSpace(reg.Brand) == "" {
		return entities.Bike{}, ErrMissingBrand
	}
	if strings.TrimSpace(reg.Model) == "" {
		return entities.Bike{}, ErrMissingModel
	}
	if strings.TrimSpace(reg.Cylinder) == "" {
		return entities.Bike{}, ErrMissingCylinder
	}
	if len(strings.TrimSpace(reg.Cliente.Nombre)) < 3 {
		return entities.Bike{}, ErrInvalidNombre
	}
	if !telefonoPattern.MatchString(strings.TrimSpace(reg.Cliente.Telefono)) {
		return entities.Bike{}, ErrInvalidTelefono
	}
	if email := strings.TrimSpace(reg.Cliente.Email); email != "" && !emailPattern.MatchString(email) {
		return entities.Bike{}, ErrInvalidEmail
	}

	return u.bikes.CreateBike(ctx, reg)
}
