package logbook

import "time"

type EntryRequest struct {
	Date        string `json:"date" binding:"required"`
	ApartmentID *int64 `json:"apartment_id"`
	Text        string `json:"text" binding:"required"`
}

type PostItRequest struct {
	Text string `json:"text" binding:"required"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type BuildingNameRequest struct {
	Name string `json:"name" binding:"required"`
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}
