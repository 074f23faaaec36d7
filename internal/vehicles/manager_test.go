package vehicles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parquea/internal/entities"
)

// memStore is the in-memory PreferenceStore used by tests.
type memStore struct {
	id     int
	ok     bool
	getErr error
	setErr error
}

func (s *memStore) Get() (int, bool, error) { return s.id, s.ok, s.getErr }

func (s *memStore) Set(vehicleID int) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.id, s.ok = vehicleID, true
	return nil
}

func (s *memStore) Clear() error {
	s.id, s.ok = 0, false
	return nil
}

func fleet(ids ...int) []entities.Vehicle {
	vehicles := make([]entities.Vehicle, 0, len(ids))
	for _, id := range ids {
		vehicles = append(vehicles, entities.Vehicle{ID: id, Plate: "AA000AA", Active: true})
	}
	return vehicles
}

func TestRecordVehicleListPicksFirstAsDefault(t *testing.T) {
	store := &memStore{}
	m := NewDefaultVehicleManager(store)

	require.NoError(t, m.RecordVehicleList(fleet(3, 5, 9)))

	id, ok, err := m.Preferred()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, id)
}

func TestRecordVehicleListIsIdempotent(t *testing.T) {
	store := &memStore{}
	m := NewDefaultVehicleManager(store)
	vehicles := fleet(3, 5, 9)

	require.NoError(t, m.RecordVehicleList(vehicles))
	first, _, err := m.Preferred()
	require.NoError(t, err)

	require.NoError(t, m.RecordVehicleList(vehicles))
	second, ok, err := m.Preferred()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, first, second)
}

func TestRecordVehicleListClearsStalePreference(t *testing.T) {
	store := &memStore{id: 99, ok: true}
	m := NewDefaultVehicleManager(store)

	// 99 is gone from the live list: the preference moves to the first
	// remaining vehicle in the same call.
	require.NoError(t, m.RecordVehicleList(fleet(3, 5)))
	id, ok, err := m.Preferred()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, id)
}

func TestRecordVehicleListEmptyListClearsPreference(t *testing.T) {
	store := &memStore{id: 99, ok: true}
	m := NewDefaultVehicleManager(store)

	require.NoError(t, m.RecordVehicleList(nil))
	_, ok, err := m.Preferred()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecordVehicleListKeepsValidPreference(t *testing.T) {
	store := &memStore{id: 5, ok: true}
	m := NewDefaultVehicleManager(store)

	require.NoError(t, m.RecordVehicleList(fleet(3, 5, 9)))
	id, ok, err := m.Preferred()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, id, "an explicit preference must not be overridden by reconcile")
}

func TestOnVehicleCreatedFirstVehicleWins(t *testing.T) {
	store := &memStore{}
	m := NewDefaultVehicleManager(store)

	require.NoError(t, m.OnVehicleCreated(entities.Vehicle{ID: 11}))
	id, ok, _ := m.Preferred()
	assert.True(t, ok)
	assert.Equal(t, 11, id)

	// A second vehicle does not displace the default.
	require.NoError(t, m.OnVehicleCreated(entities.Vehicle{ID: 12}))
	id, _, _ = m.Preferred()
	assert.Equal(t, 11, id)
}

func TestOnVehicleDeletedClearsMatchingPreference(t *testing.T) {
	store := &memStore{id: 11, ok: true}
	m := NewDefaultVehicleManager(store)

	require.NoError(t, m.OnVehicleDeleted(11))

	_, ok, err := m.Preferred()
	require.NoError(t, err)
	assert.False(t, ok, "no dangling reference after the delete returns")
}

func TestOnVehicleDeletedIgnoresOtherVehicles(t *testing.T) {
	store := &memStore{id: 11, ok: true}
	m := NewDefaultVehicleManager(store)

	require.NoError(t, m.OnVehicleDeleted(12))

	id, ok, _ := m.Preferred()
	assert.True(t, ok)
	assert.Equal(t, 11, id)
}

func TestSetPreferredOverridesDefault(t *testing.T) {
	store := &memStore{}
	m := NewDefaultVehicleManager(store)

	require.NoError(t, m.RecordVehicleList(fleet(3, 5)))
	require.NoError(t, m.SetPreferred(5))

	id, _, _ := m.Preferred()
	assert.Equal(t, 5, id)
}

func TestClearDropsPreference(t *testing.T) {
	store := &memStore{id: 3, ok: true}
	m := NewDefaultVehicleManager(store)

	require.NoError(t, m.Clear())
	_, ok, _ := m.Preferred()
	assert.False(t, ok)
}

func TestManagerPropagatesStoreErrors(t *testing.T) {
	store := &memStore{getErr: errors.New("disk gone")}
	m := NewDefaultVehicleManager(store)

	assert.Error(t, m.RecordVehicleList(fleet(1)))
	assert.Error(t, m.OnVehicleCreated(entities.Vehicle{ID: 1}))
	assert.Error(t, m.OnVehicleDeleted(1))
}
