package request

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"taller_moto/internal/domain/entities"
	"taller_moto/internal/usecase"
)

func TestCreateOrderRequest_ToDraft(t *testing.T) {
	t.Run("rebuilds the ledger and computes the total", func(t *testing.T) {
		req := CreateOrderRequest{
			MotoPlaca:        "ABC-123",
			EntryDate:        "2025-01-15",
			FaultDescription: "Ruido en el motor",
			Items: []OrderItemRequest{
				{Type: "REPUESTO", Description: "Oil filter", Count: 1, UnitValue: 15},
				{Type: "MANO_OBRA", Description: "Labor", Count: 2, UnitValue: 20},
			},
		}

		draft, err := req.ToDraft()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.MotoPlaca != "ABC-123" || draft.FaultDescription != "Ruido en el motor" {
			t.Fatalf("draft = %+v", draft)
		}
		if draft.Items.Len() != 2 {
			t.Fatalf("ledger has %d items, want 2", draft.Items.Len())
		}
		if got := draft.Items.Total(); !got.Equal(decimal.RequireFromString("55")) {
			t.Fatalf("total = %s, want 55", got)
		}
	})

	t.Run("empty items yield an empty ledger, not an error", func(t *testing.T) {
		draft, err := (CreateOrderRequest{MotoPlaca: "ABC-123"}).ToDraft()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Items.Len() != 0 {
			t.Fatalf("ledger has %d items, want 0", draft.Items.Len())
		}
	})

	t.Run("invalid item surfaces the ledger sentinel", func(t *testing.T) {
		req := CreateOrderRequest{
			MotoPlaca: "ABC-123",
			Items:     []OrderItemRequest{{Type: "DESCUENTO", Description: "x", Count: 1, UnitValue: 1}},
		}
		if _, err := req.ToDraft(); !errors.Is(err, usecase.ErrItemType) {
			t.Fatalf("err = %v, want ErrItemType", err)
		}
	})

	t.Run("zero count is rejected", func(t *testing.T) {
		req := CreateOrderRequest{
			MotoPlaca: "ABC-123",
			Items:     []OrderItemRequest{{Type: "REPUESTO", Description: "x", Count: 0, UnitValue: 1}},
		}
		if _, err := req.ToDraft(); !errors.Is(err, usecase.ErrItemCount) {
			t.Fatalf("err = %v, want ErrItemCount", err)
		}
	})
}

func TestChangeStatusRequest_ResolveStatus(t *testing.T) {
	status, err := (ChangeStatusRequest{Status: " DIAGNOSTICO "}).ResolveStatus()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != entities.OrderStatusDiagnostico {
		t.Fatalf("status = %s", status)
	}

	if _, err := (ChangeStatusRequest{Status: "PERDIDA"}).ResolveStatus(); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("err = %v, want ErrUnknownStatus", err)
	}
	if _, err := (ChangeStatusRequest{}).ResolveStatus(); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("err = %v, want ErrUnknownStatus", err)
	}
}

func TestRegisterBikeRequest_ToRegistration(t *testing.T) {
	req := RegisterBikeRequest{
		Placa:    "ABC-123",
		Brand:    "Honda",
		Model:    "CB500",
		Cylinder: "500cc",
		Cliente:  ClienteRequest{Nombre: "Juan Pérez", Telefono: "3101234567", Email: "juan@email.com"},
	}

	reg := req.ToRegistration()
	if reg.Placa != "ABC-123" || reg.Cliente.Nombre != "Juan Pérez" || reg.Cliente.Telefono != "3101234567" {
		t.Fatalf("registration = %+v", reg)
	}
}
