package report

import (
	"aparthotel/internal/domain"
	"aparthotel/internal/modules/cleaning"
)

// DailyProgress is one worker's cleaning rollup for a single date. Minutes
// and counts are prorated across shared assignments, so summing a day's
// rows never exceeds the building's total workload.
type DailyProgress struct {
	WorkerID         int64    `json:"worker_id"`
	Date             string   `json:"date"`
	CompletedCount   float64  `json:"completed_count"`
	TotalCount       float64  `json:"total_count"`
	CompletedMinutes float64  `json:"completed_minutes"`
	PendingMinutes   float64  `json:"pending_minutes"`
	QuotaMinutes     int      `json:"quota_minutes"`
	PctTasks         float64  `json:"pct_tasks"`
	PctTime          *float64 `json:"pct_time,omitempty"`
}

// aggregate folds a worker's assignments for one day into a DailyProgress.
// Assignments whose apartment is missing from the lookup are skipped rather
// than guessed at.
func aggregate(workerID int64, assignments []domain.Assignment, apartments map[int64]domain.Apartment, quota *int) DailyProgress {
	p := DailyProgress{WorkerID: workerID}
	if quota != nil {
		p.QuotaMinutes = *quota
	}

	for _, a := range assignments {
		ap, ok := apartments[a.ApartmentID]
		if !ok {
			continue
		}
		minutes, share := cleaning.Credit(ap.CleaningTimeMinutes, len(a.WorkerIDs))

		p.TotalCount += share
		if a.Status == domain.AssignmentPending {
			p.PendingMinutes += minutes
		} else {
			p.CompletedCount += share
			p.CompletedMinutes += minutes
		}
	}

	if p.TotalCount > 0 {
		p.PctTasks = p.CompletedCount / p.TotalCount
	}
	if p.QuotaMinutes > 0 {
		pct := p.CompletedMinutes / float64(p.QuotaMinutes)
		p.PctTime = &pct
	}
	return p
}
