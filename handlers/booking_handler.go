package handlers

import (
	"fmt"
	"time"

	"github.com/karim9155/Tutlayt/database"
	"github.com/karim9155/Tutlayt/models"
	"github.com/karim9155/Tutlayt/notifications"
	"github.com/karim9155/Tutlayt/scheduling"
	"github.com/karim9155/Tutlayt/services"
	"github.com/karim9155/Tutlayt/utils"
	"github.com/karim9155/Tutlayt/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	InterpreterID string  `json:"interpreter_id" validate:"required,uuid"`
	Title         string  `json:"title" validate:"required"`
	Platform      string  `json:"platform"`
	StartDate     string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	StartTime     string  `json:"start_time" validate:"required,datetime=15:04"`
	EndDate       string  `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndTime       string  `json:"end_time" validate:"required,datetime=15:04"`
	Timezone      string  `json:"timezone"`
	Languages     string  `json:"languages"`
	SubjectMatter string  `json:"subject_matter"`
	Price         float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency      string  `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Description   string  `json:"description"`
	MeetingLink   *string `json:"meeting_link,omitempty" validate:"omitempty,url"`

	PreparationMaterialsURL *string `json:"preparation_materials_url,omitempty" validate:"omitempty,url"`
}

func CreateBooking(c *fiber.Ctx) error {
	clientID := currentUserID(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	interpreterID, _ := uuid.Parse(req.InterpreterID)

	// The form submits date and time-of-day separately; the booking itself
	// carries absolute timestamps. A missing end date means same-day.
	endDate := req.EndDate
	if endDate == "" {
		endDate = req.StartDate
	}
	startDateTime, _ := time.Parse("2006-01-02 15:04", req.StartDate+" "+req.StartTime)
	endDateTime, _ := time.Parse("2006-01-02 15:04", endDate+" "+req.EndTime)

	reference, err := utils.GenerateBookingReference(database.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to allocate booking reference"})
	}

	booking, err := bookingService().Create(scheduling.CreateBookingInput{
		ClientID:                clientID,
		InterpreterID:           interpreterID,
		Reference:               reference,
		Title:                   req.Title,
		Platform:                req.Platform,
		StartTime:               startDateTime,
		EndTime:                 endDateTime,
		Timezone:                req.Timezone,
		Languages:               req.Languages,
		SubjectMatter:           req.SubjectMatter,
		Price:                   req.Price,
		Currency:                req.Currency,
		Description:             req.Description,
		MeetingLink:             req.MeetingLink,
		PreparationMaterialsURL: req.PreparationMaterialsURL,
	})
	if err != nil {
		return schedulingError(c, err)
	}

	go notifyBookingEvent(interpreterID, "booking_requested", booking)
	go emailInterpreter(interpreterID, "New Mission Request",
		fmt.Sprintf("<h1>New Mission Request</h1><p>%s has been requested for %s. Log in to accept or decline.</p>",
			booking.Title, booking.StartTime.Format("Jan 2, 2006 15:04 MST")))

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func GetMyBookings(c *fiber.Ctx) error {
	clientID := currentUserID(c)

	bookings, err := bookingService().ListForClient(clientID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}
	return c.JSON(bookings)
}

// GetMyMissions lists the interpreter's side of the same bookings.
func GetMyMissions(c *fiber.Ctx) error {
	interpreterID := currentUserID(c)

	missions, err := bookingService().ListForInterpreter(interpreterID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch missions"})
	}
	return c.JSON(missions)
}

func AcceptBooking(c *fiber.Ctx) error {
	interpreterID := currentUserID(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := bookingService().Accept(bookingID, interpreterID)
	if err != nil {
		return schedulingError(c, err)
	}

	go notifyBookingEvent(booking.ClientID, "booking_accepted", booking)
	go emailClient(booking.ClientID, "Your Booking was Accepted",
		fmt.Sprintf("<h1>Booking Accepted</h1><p>Your booking %s (%s) has been accepted by the interpreter.</p>", booking.Reference, booking.Title))

	return c.JSON(booking)
}

func DeclineBooking(c *fiber.Ctx) error {
	interpreterID := currentUserID(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := bookingService().Decline(bookingID, interpreterID)
	if err != nil {
		return schedulingError(c, err)
	}

	go notifyBookingEvent(booking.ClientID, "booking_declined", booking)
	go emailClient(booking.ClientID, "Your Booking was Declined",
		fmt.Sprintf("<h1>Booking Declined</h1><p>Your booking %s (%s) was declined. You can request another interpreter from the search page.</p>", booking.Reference, booking.Title))

	return c.JSON(booking)
}

// CompleteBooking is the interpreter marking an accepted mission done.
func CompleteBooking(c *fiber.Ctx) error {
	interpreterID := currentUserID(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := bookingService().InterpreterMarkComplete(bookingID, interpreterID)
	if err != nil {
		return schedulingError(c, err)
	}

	go services.GenerateMissionOrder(*booking)
	go notifyBookingEvent(booking.ClientID, "booking_completed", booking)
	go emailClient(booking.ClientID, "Mission Completed",
		fmt.Sprintf("<h1>Mission Completed</h1><p>Booking %s has been marked complete. You can now leave a review.</p>", booking.Reference))

	return c.JSON(booking)
}

// ConfirmBookingCompletion is the client-side completion path.
func ConfirmBookingCompletion(c *fiber.Ctx) error {
	clientID := currentUserID(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := bookingService().ClientConfirmComplete(bookingID, clientID)
	if err != nil {
		return schedulingError(c, err)
	}

	go services.GenerateMissionOrder(*booking)
	go notifyBookingEvent(booking.InterpreterID, "booking_completed", booking)

	return c.JSON(booking)
}

func CancelBooking(c *fiber.Ctx) error {
	clientID := currentUserID(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := bookingService().Cancel(bookingID, clientID)
	if err != nil {
		return schedulingError(c, err)
	}

	go notifyBookingEvent(booking.InterpreterID, "booking_cancelled", booking)
	go emailInterpreter(booking.InterpreterID, "Mission Cancelled",
		fmt.Sprintf("<h1>Mission Cancelled</h1><p>Booking %s (%s) was cancelled by the client.</p>", booking.Reference, booking.Title))

	return c.JSON(booking)
}

func notifyBookingEvent(userID uuid.UUID, event string, booking *models.Booking) {
	websocket.NotifyUser(userID, websocket.BookingEvent{
		Type:      event,
		BookingID: booking.ID,
		Reference: booking.Reference,
		Title:     booking.Title,
		Status:    booking.Status,
		StartTime: booking.StartTime,
	})
}

func emailClient(clientID uuid.UUID, subject, body string) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", clientID).Error; err != nil {
		return
	}
	notifications.SendEmail(user.FullName, user.Email, subject, body)
}

func emailInterpreter(interpreterID uuid.UUID, subject, body string) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", interpreterID).Error; err != nil {
		return
	}
	notifications.SendEmail(user.FullName, user.Email, subject, body)
}
