// Package booking holds the in-progress reservation draft, its cost
// estimate, and the submission flow that turns a finished draft into a
// backend reservation.
package booking

import (
	"time"

	"parquea/internal/entities"
)

const (
	clockLayout = "15:04"
	dateLayout  = "2006-01-02"

	// A daily reservation is priced as eight hourly units. The backend
	// applies the same rule, so this must not quietly switch to a
	// separate daily rate without a backend contract change.
	dailyRateHours = 8
)

// EstimateCost converts a tariff plus a time selection into the price shown
// next to the continue button. Hourly spans bill fractional hours
// proportionally. A missing or unparsable endpoint yields exactly one
// hour's rate instead of an error, so a half-typed form never blanks the
// price; submission re-validates completeness independently and never
// trusts this fallback.
func EstimateCost(tariff *entities.ParkingLotTariff, rt entities.ReservationType, startTime, endTime string) float64 {
	if tariff == nil {
		return 0
	}
	if rt == entities.ReservationDaily {
		return tariff.HourlyRate * dailyRateHours
	}

	start, errStart := time.Parse(clockLayout, startTime)
	end, errEnd := time.Parse(clockLayout, endTime)
	if errStart != nil || errEnd != nil {
		return tariff.HourlyRate
	}

	hours := end.Sub(start).Hours()
	if hours <= 0 {
		// An inverted span is caught by draft validation; price it like a
		// malformed one rather than returning a negative amount.
		return tariff.HourlyRate
	}
	return tariff.HourlyRate * hours
}
