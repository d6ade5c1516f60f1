package jobs

import (
	"log"
	"time"

	"github.com/karim9155/Tutlayt/database"
	"github.com/karim9155/Tutlayt/models"
)

// ExpireStaleRequests declines pending requests whose start time has passed
// so they stop cluttering interpreter dashboards. The status filter lives in
// the UPDATE itself: a request accepted between scheduling ticks is left
// alone instead of being clobbered back to declined.
func ExpireStaleRequests() {
	log.Println("Running job: ExpireStaleRequests...")

	result := database.DB.Model(&models.Booking{}).
		Where("status = ? AND start_time < ?", models.BookingStatusPending, time.Now()).
		Update("status", models.BookingStatusDeclined)

	if result.Error != nil {
		log.Printf("Error expiring stale requests: %v", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		log.Println("No stale requests found.")
		return
	}

	log.Printf("Declined %d stale request(s).", result.RowsAffected)
}
