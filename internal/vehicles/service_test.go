package vehicles

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parquea/internal/entities"
)

type fakeVehicleAPI struct {
	vehicles  []entities.Vehicle
	listErr   error
	created   *entities.Vehicle
	createErr error
	deleteErr error
}

func (f *fakeVehicleAPI) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	return f.vehicles, f.listErr
}

func (f *fakeVehicleAPI) CreateVehicle(ctx context.Context, req *entities.CreateVehicleRequest) (*entities.Vehicle, error) {
	return f.created, f.createErr
}

func (f *fakeVehicleAPI) DeleteVehicle(ctx context.Context, vehicleID int) error {
	return f.deleteErr
}

func TestServiceListReconcilesPreference(t *testing.T) {
	api := &fakeVehicleAPI{vehicles: fleet(4, 8)}
	store := &memStore{}
	svc := NewService(api, NewDefaultVehicleManager(store))

	vehicles, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, vehicles, 2)

	id, ok, _ := svc.Manager().Preferred()
	assert.True(t, ok)
	assert.Equal(t, 4, id)
}

func TestServiceListFailureLeavesPreferenceAlone(t *testing.T) {
	api := &fakeVehicleAPI{listErr: errors.New("offline")}
	store := &memStore{id: 4, ok: true}
	svc := NewService(api, NewDefaultVehicleManager(store))

	_, err := svc.List(context.Background())
	require.Error(t, err)

	id, ok, _ := svc.Manager().Preferred()
	assert.True(t, ok)
	assert.Equal(t, 4, id)
}

func TestServiceAddFirstVehicleBecomesDefault(t *testing.T) {
	api := &fakeVehicleAPI{created: &entities.Vehicle{ID: 21, Plate: "XY987ZT"}}
	store := &memStore{}
	svc := NewService(api, NewDefaultVehicleManager(store))

	vehicle, err := svc.Add(context.Background(), &entities.CreateVehicleRequest{Plate: "xy 987 zt"})
	require.NoError(t, err)
	assert.Equal(t, 21, vehicle.ID)

	id, ok, _ := svc.Manager().Preferred()
	assert.True(t, ok)
	assert.Equal(t, 21, id)
}

func TestServiceRemoveClearsPreferenceInSameOperation(t *testing.T) {
	api := &fakeVehicleAPI{}
	store := &memStore{id: 21, ok: true}
	svc := NewService(api, NewDefaultVehicleManager(store))

	require.NoError(t, svc.Remove(context.Background(), 21))

	_, ok, _ := svc.Manager().Preferred()
	assert.False(t, ok)
}

func TestServiceRemoveFailureKeepsPreference(t *testing.T) {
	api := &fakeVehicleAPI{deleteErr: errors.New("409")}
	store := &memStore{id: 21, ok: true}
	svc := NewService(api, NewDefaultVehicleManager(store))

	require.Error(t, svc.Remove(context.Background(), 21))

	id, ok, _ := svc.Manager().Preferred()
	assert.True(t, ok, "preference is only touched on the delete success path")
	assert.Equal(t, 21, id)
}
