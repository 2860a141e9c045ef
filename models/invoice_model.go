package models

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InvoiceNumber string     `gorm:"size:20;not null;unique" json:"invoice_number"`
	ClientID      uuid.UUID  `gorm:"not null" json:"client_id"`
	SessionID     *uuid.UUID `gorm:"unique" json:"session_id"`

	Description string  `gorm:"size:255;not null" json:"description"`
	Amount      float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status      string  `gorm:"size:20;not null;default:'unpaid'" json:"status"`

	ReceiptURL *string    `gorm:"size:255" json:"receipt_url"`
	PaidAt     *time.Time `json:"paid_at"`

	Client  Client           `gorm:"foreignkey:ClientID" json:"client,omitempty"`
	Session *BoardingSession `gorm:"foreignkey:SessionID" json:"session,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
