package vehicles

import (
	"context"

	"github.com/rs/zerolog/log"

	"parquea/internal/entities"
)

// VehicleAPI is the slice of the backend client this service needs.
type VehicleAPI interface {
	ListVehicles(ctx context.Context) ([]entities.Vehicle, error)
	CreateVehicle(ctx context.Context, req *entities.CreateVehicleRequest) (*entities.Vehicle, error)
	DeleteVehicle(ctx context.Context, vehicleID int) error
}

// Service pairs the remote vehicle operations with preference upkeep, so
// list, create and delete each leave the default-vehicle preference
// consistent within the same operation.
type Service struct {
	api     VehicleAPI
	manager *DefaultVehicleManager
}

func NewService(api VehicleAPI, manager *DefaultVehicleManager) *Service {
	return &Service{api: api, manager: manager}
}

func (s *Service) Manager() *DefaultVehicleManager { return s.manager }

// List fetches the user's vehicles and reconciles the preference against
// the result. A failed reconcile does not fail the fetch; the list is
// still worth rendering.
func (s *Service) List(ctx context.Context) ([]entities.Vehicle, error) {
	vehicles, err := s.api.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.manager.RecordVehicleList(vehicles); err != nil {
		log.Warn().Err(err).Msg("vehicle preference reconcile failed")
	}
	return vehicles, nil
}

// Add registers a vehicle; the first one the user adds becomes the
// default.
func (s *Service) Add(ctx context.Context, req *entities.CreateVehicleRequest) (*entities.Vehicle, error) {
	vehicle, err := s.api.CreateVehicle(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.manager.OnVehicleCreated(*vehicle); err != nil {
		log.Warn().Err(err).Int("vehicle_id", vehicle.ID).Msg("vehicle preference update failed")
	}
	return vehicle, nil
}

// Remove deletes a vehicle and, in the same operation, clears the
// preference if it pointed at the deleted vehicle. The preference is only
// touched after the backend confirmed the delete.
func (s *Service) Remove(ctx context.Context, vehicleID int) error {
	if err := s.api.DeleteVehicle(ctx, vehicleID); err != nil {
		return err
	}
	return s.manager.OnVehicleDeleted(vehicleID)
}
