package cleaning

import "time"

type CreateAssignmentRequest struct {
	ApartmentID int64   `json:"apartment_id" binding:"required"`
	WorkerIDs   []int64 `json:"worker_ids" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Notes       string  `json:"notes"`
	Shared      bool    `json:"shared"`
}

type CompleteAssignmentRequest struct {
	CompletedTaskIDs []int64 `json:"completed_task_ids" binding:"required"`
	Observations     string  `json:"observations"`
}

type ReassignRequest struct {
	WorkerIDs []int64 `json:"worker_ids" binding:"required"`
}

// EligibleApartment is an apartment a new assignment can target for a date:
// not suspended and not already assigned that day.
type EligibleApartment struct {
	ApartmentID         int64  `json:"apartment_id"`
	Name                string `json:"name"`
	Size                string `json:"size"`
	CleaningTimeMinutes int    `json:"cleaning_time_minutes"`
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}
