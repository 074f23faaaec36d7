package booking

import (
	"time"

	"parquea/internal/entities"
)

// Draft is the mutable state of the booking form. It is owned by the
// screen driving the flow, mutated from that single flow only, and never
// touches the network. Times are kept as the raw "HH:MM" field values so a
// partially typed form is representable.
type Draft struct {
	Parking    *entities.ParkingLotTariff
	Vehicle    *entities.Vehicle
	Type       entities.ReservationType
	Date       string
	StartTime  string
	EndTime    string
	SingleTime string
}

// NewDraft returns an empty draft in hourly mode.
func NewDraft() *Draft {
	return &Draft{Type: entities.ReservationHourly}
}

func (d *Draft) SetParking(t *entities.ParkingLotTariff) { d.Parking = t }
func (d *Draft) SetVehicle(v *entities.Vehicle)          { d.Vehicle = v }
func (d *Draft) SetType(rt entities.ReservationType)     { d.Type = rt }
func (d *Draft) SetDate(date string)                     { d.Date = date }
func (d *Draft) SetStartTime(t string)                   { d.StartTime = t }
func (d *Draft) SetEndTime(t string)                     { d.EndTime = t }
func (d *Draft) SetSingleTime(t string)                  { d.SingleTime = t }

// Reset clears every selection, back to an empty hourly draft.
func (d *Draft) Reset() {
	*d = Draft{Type: entities.ReservationHourly}
}

// EstimatedCost is recomputed from the current fields on every read, so
// callers never see a stale estimate. Zero while no lot is selected.
func (d *Draft) EstimatedCost() float64 {
	if d.Type == entities.ReservationDaily {
		return EstimateCost(d.Parking, d.Type, d.SingleTime, "")
	}
	return EstimateCost(d.Parking, d.Type, d.StartTime, d.EndTime)
}

// IsComplete reports whether the draft can be submitted: lot, vehicle and
// date chosen, plus the time fields the reservation type calls for. An
// hourly span must strictly move forward.
func (d *Draft) IsComplete() bool {
	return d.FirstMissing() == ""
}

// FirstMissing names the first field blocking submission, in the order the
// form presents them, or "" when the draft is complete. The name is what
// validation errors surface to the user.
func (d *Draft) FirstMissing() string {
	if d.Parking == nil {
		return "parking"
	}
	if d.Vehicle == nil {
		return "vehicle"
	}
	if !validDate(d.Date) {
		return "date"
	}
	// A lot that publishes no type list is treated as unrestricted.
	if len(d.Parking.ReservationTypes) > 0 && !d.Parking.Allows(d.Type) {
		return "a reservation type this lot offers"
	}
	if d.Type == entities.ReservationDaily {
		if !validClock(d.SingleTime) {
			return "start time"
		}
		return ""
	}
	start, errStart := time.Parse(clockLayout, d.StartTime)
	if errStart != nil {
		return "start time"
	}
	end, errEnd := time.Parse(clockLayout, d.EndTime)
	if errEnd != nil {
		return "end time"
	}
	if !end.After(start) {
		return "a valid time range"
	}
	return ""
}

// Request builds the create-reservation payload from a complete draft.
func (d *Draft) Request() *entities.CreateReservationRequest {
	req := &entities.CreateReservationRequest{
		ParkingID: d.Parking.ParkingID,
		VehicleID: d.Vehicle.ID,
		Type:      d.Type,
		Date:      d.Date,
	}
	if d.Type == entities.ReservationDaily {
		req.StartTime = d.SingleTime
	} else {
		req.StartTime = d.StartTime
		req.EndTime = d.EndTime
	}
	return req
}

func validClock(s string) bool {
	_, err := time.Parse(clockLayout, s)
	return err == nil
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
