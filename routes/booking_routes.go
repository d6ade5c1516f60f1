package routes

import (
	"github.com/karim9155/Tutlayt/handlers"
	"github.com/karim9155/Tutlayt/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", middleware.ClientRequired(), handlers.CreateBooking)
	booking.Post("/:bookingId/cancel", handlers.CancelBooking)
	booking.Post("/:bookingId/confirm-completion", handlers.ConfirmBookingCompletion)
	booking.Post("/:bookingId/review", handlers.CreateReview)

	missions := api.Group("/interpreter/missions", middleware.Protected(), middleware.InterpreterRequired())
	missions.Get("", handlers.GetMyMissions)
	missions.Post("/:bookingId/accept", handlers.AcceptBooking)
	missions.Post("/:bookingId/decline", handlers.DeclineBooking)
	missions.Post("/:bookingId/complete", handlers.CompleteBooking)
}
