package reservation

import (
	"testing"

	"aparthotel/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestResolveStatus(t *testing.T) {
	today := day("2023-06-15")

	t.Run("free with no reservations", func(t *testing.T) {
		status, res := ResolveStatus(today, nil)
		assert.Equal(t, domain.OccupancyFree, status)
		assert.Nil(t, res)
	})

	t.Run("arrival today", func(t *testing.T) {
		status, res := ResolveStatus(today, []domain.Reservation{
			{ID: 1, CheckInDate: day("2023-06-15"), CheckOutDate: day("2023-06-20")},
		})
		assert.Equal(t, domain.OccupancyArrivalToday, status)
		assert.Equal(t, int64(1), res.ID)
	})

	t.Run("departure today", func(t *testing.T) {
		status, res := ResolveStatus(today, []domain.Reservation{
			{ID: 2, CheckInDate: day("2023-06-10"), CheckOutDate: day("2023-06-15")},
		})
		assert.Equal(t, domain.OccupancyDepartureToday, status)
		assert.Equal(t, int64(2), res.ID)
	})

	t.Run("occupied mid stay", func(t *testing.T) {
		status, res := ResolveStatus(today, []domain.Reservation{
			{ID: 3, CheckInDate: day("2023-06-12"), CheckOutDate: day("2023-06-18")},
		})
		assert.Equal(t, domain.OccupancyOccupied, status)
		assert.Equal(t, int64(3), res.ID)
	})

	t.Run("reserved picks earliest future", func(t *testing.T) {
		status, res := ResolveStatus(today, []domain.Reservation{
			{ID: 4, CheckInDate: day("2023-07-10"), CheckOutDate: day("2023-07-15")},
			{ID: 5, CheckInDate: day("2023-06-20"), CheckOutDate: day("2023-06-25")},
		})
		assert.Equal(t, domain.OccupancyReserved, status)
		assert.Equal(t, int64(5), res.ID)
	})

	t.Run("arrival wins over departure on turnover day", func(t *testing.T) {
		status, res := ResolveStatus(today, []domain.Reservation{
			{ID: 6, CheckInDate: day("2023-06-10"), CheckOutDate: day("2023-06-15")},
			{ID: 7, CheckInDate: day("2023-06-15"), CheckOutDate: day("2023-06-20")},
		})
		assert.Equal(t, domain.OccupancyArrivalToday, status)
		assert.Equal(t, int64(7), res.ID)
	})

	t.Run("past reservations leave the apartment free", func(t *testing.T) {
		status, res := ResolveStatus(today, []domain.Reservation{
			{ID: 8, CheckInDate: day("2023-05-01"), CheckOutDate: day("2023-05-05")},
		})
		assert.Equal(t, domain.OccupancyFree, status)
		assert.Nil(t, res)
	})
}
