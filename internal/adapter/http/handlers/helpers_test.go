package handlers

import (
	"testing"

	"go.uber.org/mock/gomock"

	"taller_moto/internal/console"
	"taller_moto/internal/domain/entities"
	ifmocks "taller_moto/internal/usecase/interfaces/mocks"
)

// newSession builds a session wired to gateway mocks. Most tests seed state
// directly; the mocks only matter where a handler triggers a reload.
func newSession(ctrl *gomock.Controller) (*console.Session, *ifmocks.MockIBikeGateway, *ifmocks.MockIWorkOrderGateway) {
	bikeGW := ifmocks.NewMockIBikeGateway(ctrl)
	orderGW := ifmocks.NewMockIWorkOrderGateway(ctrl)
	return console.NewSession(bikeGW, orderGW), bikeGW, orderGW
}

func seedBikes(t *testing.T, s *console.Session, bikes []entities.Bike) {
	t.Helper()
	gen := s.BeginBikeLoad()
	if !s.ReplaceBikes(gen, bikes) {
		t.Fatal("seeding bikes must not be stale")
	}
}

func seedOrders(t *testing.T, s *console.Session, orders []entities.WorkOrder) {
	t.Helper()
	gen := s.BeginOrderLoad()
	if !s.ReplaceOrders(gen, orders) {
		t.Fatal("seeding orders must not be stale")
	}
}
