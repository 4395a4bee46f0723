package reservation

import "time"

type CreateReservationRequest struct {
	ApartmentID         int64  `json:"apartment_id" binding:"required"`
	GuestFirstName      string `json:"guest_first_name" binding:"required"`
	GuestLastName       string `json:"guest_last_name" binding:"required"`
	GuestDocument       string `json:"guest_document"`
	VehicleRegistration string `json:"vehicle_registration"`
	CheckInDate         string `json:"check_in_date" binding:"required"`
	CheckOutDate        string `json:"check_out_date" binding:"required"`
	Details             string `json:"details"`
}

type UpdateReservationRequest struct {
	ApartmentID         int64  `json:"apartment_id" binding:"required"`
	GuestFirstName      string `json:"guest_first_name" binding:"required"`
	GuestLastName       string `json:"guest_last_name" binding:"required"`
	GuestDocument       string `json:"guest_document"`
	VehicleRegistration string `json:"vehicle_registration"`
	CheckInDate         string `json:"check_in_date" binding:"required"`
	CheckOutDate        string `json:"check_out_date" binding:"required"`
	Details             string `json:"details"`
}

// parseDate reads a YYYY-MM-DD value and pins it to UTC midnight so date
// equality checks are exact.
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}
