package domain

import "time"

type ApartmentSize string

const (
	SizeSmall  ApartmentSize = "Chico"
	SizeMedium ApartmentSize = "Mediano"
	SizeLarge  ApartmentSize = "Grande"
	SizePH     ApartmentSize = "PH"
)

type Apartment struct {
	ID                  int64         `json:"id"`
	Name                string        `json:"name" validate:"required"`
	Size                ApartmentSize `json:"size" validate:"required"`
	SquareMeters        int           `json:"square_meters" validate:"gte=0"`
	Bedrooms            int           `json:"bedrooms" validate:"gte=0"`
	Bathrooms           int           `json:"bathrooms" validate:"gte=0"`
	CleaningTimeMinutes int           `json:"cleaning_time_minutes" validate:"required,gt=0"`
	ServicesSuspended   bool          `json:"services_suspended"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// TaskType is a controlled vocabulary entry referenced by an assignment's
// completed-task list, e.g. "SL" for a departure cleaning.
type TaskType struct {
	ID          int64  `json:"id"`
	Code        string `json:"code" validate:"required"`
	Description string `json:"description"`
}
