package models

import (
	"time"

	"github.com/google/uuid"
)

type MedicalRecord struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PetID uuid.UUID `gorm:"not null;index" json:"pet_id"`
	VetID uuid.UUID `gorm:"not null" json:"vet_id"`

	VisitDate    time.Time `gorm:"not null" json:"visit_date"`
	Diagnosis    string    `gorm:"type:text;not null" json:"diagnosis"`
	Treatment    *string   `gorm:"type:text" json:"treatment"`
	Prescription *string   `gorm:"type:text" json:"prescription"`
	Notes        *string   `gorm:"type:text" json:"notes"`

	Pet Pet  `gorm:"foreignkey:PetID" json:"pet,omitempty"`
	Vet User `gorm:"foreignkey:VetID" json:"vet,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
