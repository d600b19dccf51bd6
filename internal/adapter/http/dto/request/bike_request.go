package request

import "taller_moto/internal/domain/entities"

type ClienteRequest struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
}

// RegisterBikeRequest is the bike+client registration payload. Field rules
// (plate format, phone digits) are enforced by the use case, not here.
type RegisterBikeRequest struct {
	Placa    string         `json:"placa"`
	Brand    string         `json:"brand"`
	Model    string         `json:"model"`
	Cylinder string         `json:"cylinder"`
	Cliente  ClienteRequest `json:"cliente"`
}

func (r RegisterBikeRequest) ToRegistration() entities.BikeRegistration {
	return entities.BikeRegistration{
		Placa:    r.Placa,
		Brand:    r.Brand,
		Model:    r.Model,
		Cylinder: r.Cylinder,
		Cliente: entities.ClienteRegistration{
			Nombre:   r.Cliente.Nombre,
			Telefono: r.Cliente.Telefono,
			Email:    r.Cliente.Email,
		},
	}
}

// SetViewRequest switches the console's active sub-view.
type SetViewRequest struct {
	View string `json:"view"`
}
