package entities

type Vehicle struct {
	ID     int    `json:"id"`
	UserID int    `json:"user_id"`
	Plate  string `json:"plate"`
	Brand  string `json:"brand"`
	Model  string `json:"model"`
	Color  string `json:"color"`
	Active bool   `json:"active"`
}

// CreateVehicleRequest is the payload for POST /api/vehicles. The backend
// assigns the id; the client never invents one.
type CreateVehicleRequest struct {
	Plate string `json:"plate"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Color string `json:"color"`
}
