package routes

import (
	"github.com/karim9155/Tutlayt/handlers"
	"github.com/karim9155/Tutlayt/middleware"
	"github.com/gofiber/fiber/v2"
)

func InterpreterRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/interpreters", handlers.ListInterpreters)
	api.Get("/interpreters/:interpreterId", handlers.GetInterpreterProfile)
	api.Get("/interpreters/:interpreterId/reviews", handlers.GetInterpreterReviews)

	protected := api.Group("/interpreters/:interpreterId", middleware.Protected())
	protected.Get("/availability", handlers.GetInterpreterAvailability)
	protected.Get("/schedule", handlers.GetInterpreterWeekSchedule)

	interpreter := api.Group("/interpreter", middleware.Protected(), middleware.InterpreterRequired())

	profile := interpreter.Group("/profile")
	profile.Get("/me", handlers.GetMyInterpreterProfile)
	profile.Put("/me", handlers.UpdateMyInterpreterProfile)
	profile.Put("/me/sworn", handlers.ToggleSwornStatus)

	availability := interpreter.Group("/availability")
	availability.Put("", handlers.SetAvailabilitySlot)
	availability.Get("/me", handlers.GetMyAvailability)

	interpreter.Get("/schedule/me", handlers.GetMyWeekSchedule)
	interpreter.Get("/reviews/me", handlers.GetMyReceivedReviews)
}
