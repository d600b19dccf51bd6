package entities

// Bike is a registered motorcycle as returned by the workshop backend.
//
// Bikes are identified by their unique plate (placa, format ABC-123) and are
// immutable in this console: they are created once, together with their
// owning client, and only read afterwards.

type Bike struct {
	ID       int64  `json:"id"`
	Placa    string `json:"placa"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Cylinder string `json:"cylinder"`
}

// Cliente is the bike owner. Created alongside a bike registration and never
// edited independently from this console.
type Cliente struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Email    string `json:"email,omitempty"`
}

// ClienteRegistration is the client payload sent with a new bike.
type ClienteRegistration struct {
	Nombre   string
	Email    string
	Telefono string
}

// BikeRegistration is the input for registering a bike together with its
// owning client.
type BikeRegistration struct {
	Placa    string
	Brand    string
	Model    string
	Cylinder string
	Cliente  ClienteRegistration
}
