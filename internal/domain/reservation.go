package domain

import "time"

// Reservation is a guest's booked date interval for one apartment.
// CheckOutDate is an exclusive upper bound: a checkout and a same-day
// checkin on the same apartment are legal back-to-back.
type Reservation struct {
	ID                  int64     `json:"id"`
	ApartmentID         int64     `json:"apartment_id" validate:"required"`
	GuestFirstName      string    `json:"guest_first_name" validate:"required"`
	GuestLastName       string    `json:"guest_last_name" validate:"required"`
	GuestDocument       string    `json:"guest_document"`
	VehicleRegistration string    `json:"vehicle_registration,omitempty"`
	CheckInDate         time.Time `json:"check_in_date"`
	CheckOutDate        time.Time `json:"check_out_date"`
	Details             string    `json:"details,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// OccupancyStatus is the derived, point-in-time classification of an
// apartment. Exactly one applies for a given day.
type OccupancyStatus string

const (
	OccupancyArrivalToday   OccupancyStatus = "ARRIVAL_TODAY"
	OccupancyDepartureToday OccupancyStatus = "DEPARTURE_TODAY"
	OccupancyOccupied       OccupancyStatus = "OCCUPIED"
	OccupancyReserved       OccupancyStatus = "RESERVED"
	OccupancyFree           OccupancyStatus = "FREE"
)
