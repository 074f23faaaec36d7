// Package vehicles manages the user's vehicle list and the persisted
// default-vehicle preference.
package vehicles

import (
	"fmt"

	"parquea/internal/entities"
)

// PreferenceStore persists one optional vehicle id per user across process
// restarts. Implementations must not fail Get for a merely unset value;
// absence is (0, false, nil).
type PreferenceStore interface {
	Get() (vehicleID int, ok bool, err error)
	Set(vehicleID int) error
	Clear() error
}

// DefaultVehicleManager keeps the preference consistent with the live
// vehicle list: it never points at a vehicle the user no longer has, and
// it picks a sensible default when none was chosen.
type DefaultVehicleManager struct {
	store PreferenceStore
}

func NewDefaultVehicleManager(store PreferenceStore) *DefaultVehicleManager {
	return &DefaultVehicleManager{store: store}
}

// RecordVehicleList reconciles the preference against a fresh vehicle
// fetch. A preference pointing outside the list is cleared; with no
// preference and a non-empty list, the first vehicle becomes the default.
func (m *DefaultVehicleManager) RecordVehicleList(vehicles []entities.Vehicle) error {
	current, ok, err := m.store.Get()
	if err != nil {
		return fmt.Errorf("reading vehicle preference: %w", err)
	}

	if ok {
		for _, v := range vehicles {
			if v.ID == current {
				return nil
			}
		}
		if err := m.store.Clear(); err != nil {
			return fmt.Errorf("clearing stale vehicle preference: %w", err)
		}
		ok = false
	}

	if !ok && len(vehicles) > 0 {
		if err := m.store.Set(vehicles[0].ID); err != nil {
			return fmt.Errorf("setting default vehicle preference: %w", err)
		}
	}
	return nil
}

// SetPreferred records an explicit user choice, which always overrides the
// implicit default.
func (m *DefaultVehicleManager) SetPreferred(vehicleID int) error {
	return m.store.Set(vehicleID)
}

// OnVehicleCreated makes the first vehicle the user ever adds the default.
// An existing preference is left alone.
func (m *DefaultVehicleManager) OnVehicleCreated(v entities.Vehicle) error {
	_, ok, err := m.store.Get()
	if err != nil {
		return fmt.Errorf("reading vehicle preference: %w", err)
	}
	if ok {
		return nil
	}
	return m.store.Set(v.ID)
}

// OnVehicleDeleted clears the preference when the preferred vehicle is
// deleted. It is called on the deletion success path so no reader ever
// observes a dangling reference.
func (m *DefaultVehicleManager) OnVehicleDeleted(vehicleID int) error {
	current, ok, err := m.store.Get()
	if err != nil {
		return fmt.Errorf("reading vehicle preference: %w", err)
	}
	if !ok || current != vehicleID {
		return nil
	}
	return m.store.Clear()
}

// Preferred returns the persisted default vehicle id, if any.
func (m *DefaultVehicleManager) Preferred() (int, bool, error) {
	return m.store.Get()
}

// Clear drops the preference. Wired to logout together with the rest of
// the session data.
func (m *DefaultVehicleManager) Clear() error {
	return m.store.Clear()
}
