package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

type BoardingSession struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ConfigID uuid.UUID `gorm:"not null;index" json:"config_id"`
	PetID    uuid.UUID `gorm:"not null" json:"pet_id"`

	SlotNumber int    `gorm:"not null" json:"slot_number"`
	Status     string `gorm:"size:20;not null;default:'active'" json:"status"`

	CheckInDate          time.Time  `gorm:"not null" json:"check_in_date"`
	ExpectedCheckOutDate *time.Time `json:"expected_check_out_date"`
	CheckOutDate         *time.Time `json:"check_out_date"`

	// Snapshot of the config's PricePerDay at check-in time; later price
	// changes on the config never touch an open session.
	DailyRate   *float64 `gorm:"type:numeric(10,2)" json:"daily_rate"`
	StayDays    *int     `json:"stay_days"`
	TotalAmount *float64 `gorm:"type:numeric(10,2)" json:"total_amount"`

	Notes         *string `gorm:"type:text" json:"notes"`
	CheckOutNotes *string `gorm:"type:text" json:"check_out_notes"`

	AssignedStaffID *uuid.UUID `json:"assigned_staff_id"`
	CreatedByID     uuid.UUID  `gorm:"not null" json:"created_by_id"`

	Config        BoardingConfig `gorm:"foreignkey:ConfigID" json:"config,omitempty"`
	Pet           Pet            `gorm:"foreignkey:PetID" json:"pet,omitempty"`
	AssignedStaff *User          `gorm:"foreignkey:AssignedStaffID" json:"assigned_staff,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
