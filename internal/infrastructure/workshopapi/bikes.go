package workshopapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"taller_moto/internal/domain/entities"
	"taller_moto/internal/usecase/interfaces"
)

var _ interfaces.IBikeGateway = (*Client)(nil)

type bikeDTO struct {
	ID       flexInt `json:"id"`
	Placa    string  `json:"placa"`
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Cylinder string  `json:"cylinder"`
}

func (d bikeDTO) toEntity() entities.Bike {
	return entities.Bike{
		ID:       int64(d.ID),
		Placa:    d.Placa,
		Brand:    d.Brand,
		Model:    d.Model,
		Cylinder: d.Cylinder,
	}
}

type createClienteDTO struct {
	Nombre   string  `json:"nombre"`
	Email    *string `json:"email"`
	Telefono int64   `json:"telefono"`
}

type createBikeDTO struct {
	Placa    string           `json:"placa"`
	Brand    string           `json:"brand"`
	Model    string           `json:"model"`
	Cylinder string           `json:"cylinder"`
	Cliente  createClienteDTO `json:"cliente"`
}

// ListBikes fetches the full bike collection (GET /bikes).
func (c *Client) ListBikes(ctx context.Context) ([]entities.Bike, error) {
	var resp struct {
		Data []bikeDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/bikes", nil, &resp); err != nil {
		return nil, err
	}

	bikes := make([]entities.Bike, 0, len(resp.Data))
	for _, d := range resp.Data {
		bikes = append(bikes, d.toEntity())
	}
	return bikes, nil
}

// CreateBike registers a bike together with its owning client (POST /bikes).
// The backend expects the phone as a number; the registration carries it as
// a validated 10-digit string.
func (c *Client) CreateBike(ctx context.Context, reg entities.BikeRegistration) (entities.Bike, error) {
	telefono, err := strconv.ParseInt(strings.TrimSpace(reg.Cliente.Telefono), 10, 64)
	if err != nil {
		return entities.Bike{}, fmt.Errorf("workshop api: invalid telefono %q: %w", reg.Cliente.Telefono, err)
	}

	var email *string
	if v := strings.TrimSpace(reg.Cliente.Email); v != "" {
		email = &v
	}

	payload := createBikeDTO{
		Placa:    reg.Placa,
		Brand:    reg.Brand,
		Model:    reg.Model,
		Cylinder: reg.Cylinder,
		Cliente: createClienteDTO{
			Nombre:   reg.Cliente.Nombre,
			Email:    email,
			Telefono: telefono,
		},
	}

	var resp struct {
		Data bikeDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/bikes", payload, &resp); err != nil {
		return entities.Bike{}, err
	}
	return resp.Data.toEntity(), nil
}
