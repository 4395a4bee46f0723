package catalog

import "aparthotel/internal/domain"

type ApartmentRequest struct {
	Name                string `json:"name" binding:"required"`
	Size                string `json:"size" binding:"required"`
	SquareMeters        int    `json:"square_meters" binding:"gte=0"`
	Bedrooms            int    `json:"bedrooms" binding:"gte=0"`
	Bathrooms           int    `json:"bathrooms" binding:"gte=0"`
	CleaningTimeMinutes int    `json:"cleaning_time_minutes" binding:"required,gt=0"`
	ServicesSuspended   bool   `json:"services_suspended"`
}

type TaskTypeRequest struct {
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
}

func parseSize(s string) (domain.ApartmentSize, bool) {
	switch domain.ApartmentSize(s) {
	case domain.SizeSmall, domain.SizeMedium, domain.SizeLarge, domain.SizePH:
		return domain.ApartmentSize(s), true
	}
	return "", false
}
