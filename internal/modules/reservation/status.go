package reservation

import (
	"time"

	"aparthotel/internal/domain"
)

// ApartmentStatus is one card of the occupancy board.
type ApartmentStatus struct {
	ApartmentID int64                  `json:"apartment_id"`
	Name        string                 `json:"name"`
	Suspended   bool                   `json:"suspended"`
	Status      domain.OccupancyStatus `json:"status"`
	Reservation *domain.Reservation    `json:"reservation,omitempty"`
}

// ResolveStatus derives an apartment's occupancy for one day from its full
// reservation snapshot. Arrival and departure events take priority over the
// occupied/reserved labels so front-desk staff never miss them; the earliest
// future reservation backs RESERVED. Pure and recomputed on every read.
func ResolveStatus(today time.Time, reservations []domain.Reservation) (domain.OccupancyStatus, *domain.Reservation) {
	for i := range reservations {
		if reservations[i].CheckInDate.Equal(today) {
			return domain.OccupancyArrivalToday, &reservations[i]
		}
	}

	for i := range reservations {
		if reservations[i].CheckOutDate.Equal(today) {
			return domain.OccupancyDepartureToday, &reservations[i]
		}
	}

	for i := range reservations {
		if reservations[i].CheckInDate.Before(today) && reservations[i].CheckOutDate.After(today) {
			return domain.OccupancyOccupied, &reservations[i]
		}
	}

	var next *domain.Reservation
	for i := range reservations {
		if !reservations[i].CheckInDate.After(today) {
			continue
		}
		if next == nil || reservations[i].CheckInDate.Before(next.CheckInDate) {
			next = &reservations[i]
		}
	}
	if next != nil {
		return domain.OccupancyReserved, next
	}

	return domain.OccupancyFree, nil
}
