package client

import (
	"context"
	"fmt"
	"net/http"

	"parquea/internal/entities"
	"parquea/internal/utils"
)

// ListVehicles returns the authenticated user's vehicles.
func (c *Client) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	var vehicles []entities.Vehicle
	if err := c.doJSON(ctx, http.MethodGet, "/api/vehicles", nil, nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// CreateVehicle registers a vehicle for the user. The plate is sent in
// canonical form so the backend never sees two spellings of one plate.
func (c *Client) CreateVehicle(ctx context.Context, req *entities.CreateVehicleRequest) (*entities.Vehicle, error) {
	normalized := *req
	normalized.Plate = utils.NormalizePlate(req.Plate)

	var vehicle entities.Vehicle
	if err := c.doJSON(ctx, http.MethodPost, "/api/vehicles", nil, &normalized, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// DeleteVehicle removes a vehicle by id.
func (c *Client) DeleteVehicle(ctx context.Context, vehicleID int) error {
	path := fmt.Sprintf("/api/vehicles/%d", vehicleID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}
