package models

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID     *uuid.UUID `json:"session_id"`
	AppointmentID *uuid.UUID `json:"appointment_id"`
	ClientID      uuid.UUID  `gorm:"not null" json:"client_id"`

	// checkout_due, appointment_reminder
	Kind    string `gorm:"size:30;not null" json:"kind"`
	Phone   string `gorm:"size:20;not null" json:"phone"`
	Message string `gorm:"type:text;not null" json:"message"`
	Status  string `gorm:"size:20;not null;default:'pending'" json:"status"`

	SentAt *time.Time `json:"sent_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
