package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BoardingTypeBoarding = "boarding"
	BoardingTypeICU      = "icu"
)

type BoardingConfig struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	NameEn string    `gorm:"size:255;not null" json:"name_en"`
	NameAr string    `gorm:"size:255;not null" json:"name_ar"`

	// BOARDING or ICU; immutable after creation, like Species.
	BoardingType string `gorm:"size:20;not null" json:"boarding_type"`
	Species      string `gorm:"size:50;not null" json:"species"`

	TotalSlots  int      `gorm:"not null" json:"total_slots"`
	PricePerDay *float64 `gorm:"type:numeric(10,2)" json:"price_per_day"`
	Notes       *string  `gorm:"type:text" json:"notes"`
	IsActive    bool     `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
