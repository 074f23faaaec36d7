package client

import (
	"context"
	"fmt"
	"net/http"

	"parquea/internal/entities"
)

// GetTariff fetches the pricing and capacity snapshot for one parking lot.
func (c *Client) GetTariff(ctx context.Context, parkingID int) (*entities.ParkingLotTariff, error) {
	var tariff entities.ParkingLotTariff
	path := fmt.Sprintf("/api/parkings/%d/tariff", parkingID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &tariff); err != nil {
		return nil, err
	}
	return &tariff, nil
}

// CreateReservation submits a completed booking. The backend assigns the
// reservation id and code; a 2xx with no body is an error because the
// caller cannot proceed to payment without them.
func (c *Client) CreateReservation(ctx context.Context, req *entities.CreateReservationRequest) (*entities.Reservation, error) {
	var reservation entities.Reservation
	if err := c.doJSON(ctx, http.MethodPost, "/api/reservations", nil, req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}
