package routes

import (
	"github.com/karim9155/Tutlayt/handlers"
	"github.com/karim9155/Tutlayt/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile/me", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)

	company := api.Group("/company/me", middleware.Protected(), middleware.ClientRequired())
	company.Get("", handlers.GetMyCompanyProfile)
	company.Put("", handlers.UpdateMyCompanyProfile)
}
