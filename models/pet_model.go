package models

import (
	"time"

	"github.com/google/uuid"
)

type Pet struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClientID uuid.UUID `gorm:"not null" json:"client_id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Species  string    `gorm:"size:50;not null" json:"species"`
	Breed    *string   `gorm:"size:100" json:"breed"`
	Gender   *string   `gorm:"size:10" json:"gender"`

	BirthDate *time.Time `json:"birth_date"`
	WeightKg  *float64   `gorm:"type:numeric(6,2)" json:"weight_kg"`
	PhotoURL  *string    `gorm:"size:255" json:"photo_url"`
	Notes     *string    `gorm:"type:text" json:"notes"`

	Client Client `gorm:"foreignkey:ClientID" json:"client,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
