package maintenance

import (
	"time"

	"aparthotel/internal/domain"
)

type CreateWorkOrderRequest struct {
	ApartmentID    int64  `json:"apartment_id" binding:"required"`
	RequestDate    string `json:"request_date" binding:"required"`
	RequesterName  string `json:"requester_name" binding:"required"`
	RequestDetails string `json:"request_details"`
	RequestMedium  string `json:"request_medium" binding:"required"`
}

type LogWorkDoneRequest struct {
	CompletionDate string `json:"completion_date" binding:"required"`
	MaterialsUsed  string `json:"materials_used"`
}

type LogApprovalRequest struct {
	ApprovalDate string `json:"approval_date" binding:"required"`
	ApprovalName string `json:"approval_name" binding:"required"`
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

func parseMedium(s string) (domain.RequestMedium, bool) {
	switch domain.RequestMedium(s) {
	case domain.MediumPhone, domain.MediumEmail, domain.MediumInPerson:
		return domain.RequestMedium(s), true
	}
	return "", false
}
