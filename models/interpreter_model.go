package models

import (
	"time"

	"github.com/google/uuid"
)

type Interpreter struct {
	UserID          uuid.UUID `gorm:"primary_key" json:"user_id"`
	Bio             *string   `gorm:"type:text" json:"bio"`
	City            *string   `gorm:"size:100" json:"city"`
	Languages       string    `gorm:"type:text" json:"languages"`
	Specializations string    `gorm:"type:text" json:"specializations"`
	HourlyRate      float64   `gorm:"type:numeric(10,2);default:0.00" json:"hourly_rate"`
	YearsExperience int       `gorm:"default:0" json:"years_experience"`
	IsSworn         bool      `gorm:"default:false" json:"is_sworn"`

	Verified        bool    `gorm:"default:false" json:"verified"`
	RejectionReason *string `gorm:"type:text" json:"rejection_reason"`
	AvgRating       float32 `gorm:"default:0" json:"avg_rating"`

	User      User       `gorm:"foreignkey:UserID" json:"user"`
	Documents []Document `gorm:"foreignkey:OwnerID;references:UserID" json:"documents,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
