package models

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	UserID      uuid.UUID `gorm:"primary_key" json:"user_id"`
	CompanyName string    `gorm:"size:255;not null" json:"company_name"`
	Website     *string   `gorm:"size:255" json:"website"`

	VerificationStatus string  `gorm:"size:30;not null;default:'unverified'" json:"verification_status"`
	RejectionReason    *string `gorm:"type:text" json:"rejection_reason"`

	User      User       `gorm:"foreignkey:UserID" json:"user"`
	Documents []Document `gorm:"foreignkey:OwnerID;references:UserID" json:"documents,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
