package domain

import "time"

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentVerified  AssignmentStatus = "verified"
)

// Assignment is a cleaning task for one apartment, one date, one or more
// workers. Completed task-type ids and observations survive a reopen so a
// correction can be made in place.
type Assignment struct {
	ID               int64            `json:"id"`
	ApartmentID      int64            `json:"apartment_id" validate:"required"`
	WorkerIDs        []int64          `json:"worker_ids" validate:"required,min=1"`
	Date             time.Time        `json:"date"`
	Notes            string           `json:"notes,omitempty"`
	Status           AssignmentStatus `json:"status"`
	Shared           bool             `json:"shared"`
	CompletedTaskIDs []int64          `json:"completed_task_ids"`
	Observations     string           `json:"observations,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
