package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PetID    uuid.UUID  `gorm:"not null" json:"pet_id"`
	ClientID uuid.UUID  `gorm:"not null" json:"client_id"`
	VetID    *uuid.UUID `json:"vet_id"`

	ScheduledAt time.Time `gorm:"not null;index" json:"scheduled_at"`
	Reason      *string   `gorm:"type:text" json:"reason"`
	Room        *string   `gorm:"size:50" json:"room"`

	// Flow-board column: waiting, in_room, with_doctor, checkout, done, cancelled.
	Status string `gorm:"size:20;not null;default:'waiting'" json:"status"`

	Pet    Pet    `gorm:"foreignkey:PetID" json:"pet,omitempty"`
	Client Client `gorm:"foreignkey:ClientID" json:"client,omitempty"`
	Vet    *User  `gorm:"foreignkey:VetID" json:"vet,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
