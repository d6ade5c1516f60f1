package models

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID uuid.UUID `gorm:"not null;index" json:"-"`
	DocType string    `gorm:"size:100;not null" json:"doc_type"`
	Bucket  string    `gorm:"size:100;not null" json:"bucket"`
	FileURL string    `gorm:"size:512;not null" json:"file_url"`

	UploadedAt time.Time `json:"uploaded_at"`
}
