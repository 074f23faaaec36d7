package entities

// ReservationType selects which tariff unit a booking is priced on.
type ReservationType string

const (
	ReservationHourly  ReservationType = "hourly"
	ReservationDaily   ReservationType = "daily"
	ReservationMonthly ReservationType = "monthly"
)

// ParkingLotTariff is the pricing and capacity snapshot of one parking lot,
// as returned by the backend. It is never mutated locally.
type ParkingLotTariff struct {
	ParkingID        int                `json:"parking_id"`
	Name             string             `json:"name"`
	HourlyRate       float64            `json:"hourly_rate"`
	TotalSpaces      int                `json:"total_spaces"`
	AvailableSpaces  int                `json:"available_spaces"`
	ReservationTypes []ReservationType  `json:"reservation_types"`
	TypeMultipliers  map[string]float64 `json:"vehicle_type_multipliers,omitempty"`
}

// Allows reports whether the lot accepts reservations of the given type.
func (t *ParkingLotTariff) Allows(rt ReservationType) bool {
	for _, allowed := range t.ReservationTypes {
		if allowed == rt {
			return true
		}
	}
	return false
}
