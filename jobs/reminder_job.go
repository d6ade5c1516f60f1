package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/karim9155/Tutlayt/database"
	"github.com/karim9155/Tutlayt/models"
	"github.com/karim9155/Tutlayt/notifications"
)

func SendMissionReminders() {
	log.Println("Running job: SendMissionReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingBookings []models.Booking

	err := database.DB.
		Preload("Client").
		Preload("Interpreter.User").
		Where("status = ? AND start_time BETWEEN ? AND ?", models.BookingStatusAccepted, lowerBound, upperBound).
		Find(&upcomingBookings).Error

	if err != nil {
		log.Printf("Error checking for upcoming missions: %v", err)
		return
	}

	if len(upcomingBookings) == 0 {
		return
	}

	for _, booking := range upcomingBookings {
		log.Printf("Sending reminder for booking ID: %s", booking.ID)

		meetingLink := ""
		if booking.MeetingLink != nil {
			meetingLink = fmt.Sprintf("<p><b>Meeting Link:</b> <a href='%s'>Join Session</a></p>", *booking.MeetingLink)
		}

		emailSubject := "Reminder: Your Mission Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Mission Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that %s (%s) is scheduled to start in one hour at %s.</p>%s",
			booking.Title,
			booking.Reference,
			booking.StartTime.Format(time.Kitchen),
			meetingLink,
		)

		go notifications.SendEmail(booking.Client.FullName, booking.Client.Email, emailSubject, emailBody)
		go notifications.SendEmail(booking.Interpreter.User.FullName, booking.Interpreter.User.Email, emailSubject, emailBody)
	}
}
