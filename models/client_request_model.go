package models

import (
	"time"

	"github.com/google/uuid"
)

// A ClientAccountRequest is the public intake form a company submits before an
// admin provisions a client account for it.
type ClientAccountRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyName string    `gorm:"size:255;not null" json:"company_name"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	Website     *string   `gorm:"size:255" json:"website"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Status      string    `gorm:"size:20;not null;default:'new'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
