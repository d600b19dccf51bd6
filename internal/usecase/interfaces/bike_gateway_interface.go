package interfaces

import (
	"context"
	"taller_moto/internal/domain/entities"
)

// IBikeGateway abstracts the workshop backend endpoints for bikes.
//
// The console must be able to:
//   - load the full bike collection on mount and after a registration
//   - register a bike together with its owning client

type IBikeGateway interface {
	ListBikes(ctx context.Context) ([]entities.Bike, error)
	CreateBike(ctx context.Context, reg entities.BikeRegistration) (entities.Bike, error)
}
