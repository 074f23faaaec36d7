package entities

import "time"

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusActive    ReservationStatus = "active"
	StatusFinished  ReservationStatus = "finished"
	StatusCancelled ReservationStatus = "cancelled"
)

// ParkingSummary and VehicleSummary are the short forms the backend embeds
// inside a reservation.
type ParkingSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type VehicleSummary struct {
	ID    int    `json:"id"`
	Plate string `json:"plate"`
	Model string `json:"model"`
}

// Reservation is immutable from the client's perspective once returned;
// status transitions are owned by the backend and only observed here.
type Reservation struct {
	ID        int               `json:"id"`
	Code      string            `json:"code"`
	Parking   ParkingSummary    `json:"parking"`
	Vehicle   VehicleSummary    `json:"vehicle"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time"`
	Type      ReservationType   `json:"type"`
	Status    ReservationStatus `json:"status"`
	Total     float64           `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
}

// CreateReservationRequest is the payload for POST /api/reservations.
type CreateReservationRequest struct {
	ParkingID int             `json:"parking_id"`
	VehicleID int             `json:"vehicle_id"`
	Type      ReservationType `json:"type"`
	Date      string          `json:"date"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time,omitempty"`
}
