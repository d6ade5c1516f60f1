package models

import (
	"time"

	"github.com/google/uuid"
)

// One review per (booking, reviewer): the client reviews the interpreter and
// the interpreter may review the client on the same booking.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID  uuid.UUID `gorm:"not null;uniqueIndex:idx_review_booking_reviewer" json:"booking_id"`
	ReviewerID uuid.UUID `gorm:"not null;uniqueIndex:idx_review_booking_reviewer" json:"reviewer_id"`
	RevieweeID uuid.UUID `gorm:"not null" json:"reviewee_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`

	Booking  Booking `gorm:"foreignkey:BookingID" json:"-"`
	Reviewer User    `gorm:"foreignkey:ReviewerID" json:"reviewer,omitempty"`
	Reviewee User    `gorm:"foreignkey:RevieweeID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
