package report

import (
	"context"
	"errors"
	"time"

	"aparthotel/internal/domain"
	"aparthotel/internal/modules/cleaning"

	"gorm.io/gorm"
)

type Service struct {
	assignments AssignmentRepository
	users       UserRepository
	apartments  ApartmentRepository
}

func NewService(assignments AssignmentRepository, users UserRepository, apartments ApartmentRepository) *Service {
	return &Service{assignments: assignments, users: users, apartments: apartments}
}

// WorkloadRow is one worker's prorated totals over a date range, shaped for
// CSV export.
type WorkloadRow struct {
	WorkerID         int64   `json:"worker_id"`
	WorkerName       string  `json:"worker_name"`
	ApartmentCount   float64 `json:"apartment_count"`
	CompletedMinutes float64 `json:"completed_minutes"`
	PendingMinutes   float64 `json:"pending_minutes"`
}

func (s *Service) DailyProgress(ctx context.Context, workerID int64, dateStr string) (*DailyProgress, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, ErrValidation
	}

	u, err := s.users.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	assignments, err := s.assignments.ListByWorkerAndDate(ctx, workerID, date)
	if err != nil {
		return nil, err
	}

	apartments, err := s.apartmentIndex(ctx)
	if err != nil {
		return nil, err
	}

	p := aggregate(workerID, assignments, apartments, u.DailyMinutes)
	p.Date = date.Format("2006-01-02")
	return &p, nil
}

// Workload rolls up prorated minutes per worker across [from, to] inclusive.
// A zero workerID means all workers.
func (s *Service) Workload(ctx context.Context, fromStr, toStr string, workerID int64) ([]WorkloadRow, error) {
	from, err := parseDate(fromStr)
	if err != nil {
		return nil, ErrValidation
	}
	to, err := parseDate(toStr)
	if err != nil {
		return nil, ErrValidation
	}
	if to.Before(from) {
		return nil, ErrValidation
	}

	assignments, err := s.assignments.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	apartments, err := s.apartmentIndex(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	rows := map[int64]*WorkloadRow{}
	for _, a := range assignments {
		ap, ok := apartments[a.ApartmentID]
		if !ok {
			continue
		}
		minutes, share := cleaning.Credit(ap.CleaningTimeMinutes, len(a.WorkerIDs))

		for _, wid := range a.WorkerIDs {
			if workerID != 0 && wid != workerID {
				continue
			}
			row, ok := rows[wid]
			if !ok {
				row = &WorkloadRow{WorkerID: wid, WorkerName: names[wid]}
				rows[wid] = row
			}
			row.ApartmentCount += share
			if a.Status == domain.AssignmentPending {
				row.PendingMinutes += minutes
			} else {
				row.CompletedMinutes += minutes
			}
		}
	}

	out := make([]WorkloadRow, 0, len(rows))
	for _, u := range users {
		if row, ok := rows[u.ID]; ok {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *Service) apartmentIndex(ctx context.Context) (map[int64]domain.Apartment, error) {
	apartments, err := s.apartments.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[int64]domain.Apartment, len(apartments))
	for _, ap := range apartments {
		idx[ap.ID] = ap
	}
	return idx, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}
