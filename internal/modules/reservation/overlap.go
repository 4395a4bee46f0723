package reservation

import (
	"time"

	"aparthotel/internal/domain"
)

// Overlaps reports whether two half-open date ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching ranges do not overlap: a checkout and
// a same-day checkin on the same apartment are legal back-to-back.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return bStart.Before(aEnd) && bEnd.After(aStart)
}

// findConflict scans existing reservations for one that overlaps the
// candidate range, skipping excludeID so an edit does not collide with
// itself.
func findConflict(existing []domain.Reservation, start, end time.Time, excludeID int64) *domain.Reservation {
	for i := range existing {
		r := &existing[i]
		if r.ID == excludeID {
			continue
		}
		if Overlaps(r.CheckInDate, r.CheckOutDate, start, end) {
			return r
		}
	}
	return nil
}
