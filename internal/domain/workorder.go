package domain

import "time"

type WorkOrderStatus string

const (
	WorkOrderRequested WorkOrderStatus = "requested"
	WorkOrderDone      WorkOrderStatus = "done"
	WorkOrderApproved  WorkOrderStatus = "approved"
)

type RequestMedium string

const (
	MediumPhone    RequestMedium = "phone"
	MediumEmail    RequestMedium = "email"
	MediumInPerson RequestMedium = "in_person"
)

// WorkOrder is a maintenance ticket with a linear three-stage lifecycle.
// Dates must be non-decreasing: requestDate <= completionDate <= approvalDate.
type WorkOrder struct {
	ID             int64           `json:"id"`
	ApartmentID    int64           `json:"apartment_id" validate:"required"`
	RequestDate    time.Time       `json:"request_date"`
	RequesterName  string          `json:"requester_name" validate:"required"`
	RequestDetails string          `json:"request_details"`
	RequestMedium  RequestMedium   `json:"request_medium"`
	Status         WorkOrderStatus `json:"status"`
	CompletionDate *time.Time      `json:"completion_date,omitempty"`
	MaterialsUsed  string          `json:"materials_used,omitempty"`
	ApprovalName   string          `json:"approval_name,omitempty"`
	ApprovalDate   *time.Time      `json:"approval_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
