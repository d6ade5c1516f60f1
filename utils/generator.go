package utils

import (
	"math/rand"
	"time"

	"github.com/karim9155/Tutlayt/models"
	"gorm.io/gorm"
)

const referenceLength = 8

// No 0/O/1/I/L: references get read out loud over the phone.
const referenceBytes = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

func newReference(r *rand.Rand) string {
	b := make([]byte, referenceLength)
	for i := range b {
		b[i] = referenceBytes[r.Intn(len(referenceBytes))]
	}
	return "BK-" + string(b)
}

// GenerateBookingReference returns a short human-readable reference like
// BK-7KQ2M9XT, retrying until it does not collide with an existing booking.
func GenerateBookingReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		reference := newReference(seededRand)

		var booking models.Booking
		err := tx.Where("reference = ?", reference).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return reference, nil
			}
			return "", err
		}
	}
}
