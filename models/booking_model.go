package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusAccepted  = "accepted"
	BookingStatusDeclined  = "declined"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Reference     string    `gorm:"size:12;not null;unique" json:"reference"`
	ClientID      uuid.UUID `gorm:"not null" json:"client_id"`
	InterpreterID uuid.UUID `gorm:"not null" json:"interpreter_id"`

	Title         string    `gorm:"size:255;not null" json:"title"`
	Platform      string    `gorm:"size:100" json:"platform"`
	StartTime     time.Time `gorm:"not null" json:"start_time"`
	EndTime       time.Time `gorm:"not null" json:"end_time"`
	Timezone      string    `gorm:"size:100" json:"timezone"`
	Languages     string    `gorm:"size:255" json:"languages"`
	SubjectMatter string    `gorm:"size:255" json:"subject_matter"`

	Price    float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	Currency string  `gorm:"size:3;not null;default:'TND'" json:"currency"`

	Description             string  `gorm:"type:text" json:"description"`
	MeetingLink             *string `gorm:"size:255" json:"meeting_link"`
	PreparationMaterialsURL *string `gorm:"size:255" json:"preparation_materials_url"`
	MissionOrderURL         *string `gorm:"size:255" json:"mission_order_url"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	Client      User        `gorm:"foreignkey:ClientID" json:"client,omitempty"`
	Interpreter Interpreter `gorm:"foreignkey:InterpreterID;references:UserID" json:"interpreter,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
