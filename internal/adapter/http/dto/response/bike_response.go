package response

import "taller_moto/internal/domain/entities"

type BikeResponse struct {
	ID       int64  `json:"id"`
	Placa    string `json:"placa"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Cylinder string `json:"cylinder"`
}

func FromBike(b entities.Bike) BikeResponse {
	return BikeResponse{
		ID:       b.ID,
		Placa:    b.Placa,
		Brand:    b.Brand,
		Model:    b.Model,
		Cylinder: b.Cylinder,
	}
}

func FromBikes(bikes []entities.Bike) []BikeResponse {
	out := make([]BikeResponse, 0, len(bikes))
	for _, b := range bikes {
		out = append(out, FromBike(b))
	}
	return out
}
