package reservation

import (
	"testing"
	"time"

	"aparthotel/internal/domain"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d.UTC()
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{"partial overlap", "2023-01-01", "2023-01-05", "2023-01-03", "2023-01-08", true},
		{"contained", "2023-01-01", "2023-01-10", "2023-01-03", "2023-01-05", true},
		{"identical", "2023-01-01", "2023-01-05", "2023-01-01", "2023-01-05", true},
		{"touching at checkout is free", "2023-01-01", "2023-01-05", "2023-01-05", "2023-01-10", false},
		{"touching at checkin is free", "2023-01-05", "2023-01-10", "2023-01-01", "2023-01-05", false},
		{"disjoint", "2023-01-01", "2023-01-03", "2023-01-10", "2023-01-12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
			assert.Equal(t, tt.want, got)

			// overlap is symmetric
			rev := Overlaps(day(tt.bStart), day(tt.bEnd), day(tt.aStart), day(tt.aEnd))
			assert.Equal(t, got, rev)
		})
	}
}

func TestFindConflict(t *testing.T) {
	existing := []domain.Reservation{
		{ID: 1, ApartmentID: 7, CheckInDate: day("2023-10-20"), CheckOutDate: day("2023-10-26")},
		{ID: 2, ApartmentID: 7, CheckInDate: day("2023-11-01"), CheckOutDate: day("2023-11-05")},
	}

	t.Run("detects overlap", func(t *testing.T) {
		c := findConflict(existing, day("2023-10-24"), day("2023-10-28"), 0)
		assert.NotNil(t, c)
		assert.Equal(t, int64(1), c.ID)
	})

	t.Run("back to back is legal", func(t *testing.T) {
		c := findConflict(existing, day("2023-10-26"), day("2023-11-01"), 0)
		assert.Nil(t, c)
	})

	t.Run("edit skips itself", func(t *testing.T) {
		c := findConflict(existing, day("2023-10-21"), day("2023-10-25"), 1)
		assert.Nil(t, c)
	})

	t.Run("edit still collides with others", func(t *testing.T) {
		c := findConflict(existing, day("2023-10-30"), day("2023-11-02"), 1)
		assert.NotNil(t, c)
		assert.Equal(t, int64(2), c.ID)
	})
}
