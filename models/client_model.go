package models

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Phone    string    `gorm:"size:20;not null" json:"phone"`
	Email    *string   `gorm:"size:255" json:"email"`
	Address  *string   `gorm:"size:255" json:"address"`
	Notes    *string   `gorm:"type:text" json:"notes"`

	Pets []Pet `gorm:"foreignkey:ClientID" json:"pets,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
