package models

import (
	"time"

	"github.com/google/uuid"
)

// An AvailabilitySlot is one interpreter-declared hour on a specific date,
// spanning [StartHour:00, StartHour+1:00). The composite unique index keeps
// repeated inserts for the same hour from producing duplicates.
type AvailabilitySlot struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InterpreterID uuid.UUID `gorm:"not null;uniqueIndex:idx_slot_owner_date_hour" json:"-"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:idx_slot_owner_date_hour" json:"date"`
	StartHour     int       `gorm:"not null;uniqueIndex:idx_slot_owner_date_hour" json:"start_hour"`
	EndHour       int       `gorm:"not null" json:"end_hour"`
	IsBooked      bool      `gorm:"not null;default:false" json:"is_booked"`

	Interpreter Interpreter `gorm:"foreignkey:InterpreterID;references:UserID" json:"-"`

	CreatedAt time.Time `json:"-"`
}
