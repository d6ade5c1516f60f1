package routes

import (
	"github.com/karim9155/Tutlayt/handlers"
	"github.com/karim9155/Tutlayt/middleware"
	"github.com/gofiber/fiber/v2"
)

func DocumentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Blank templates are public so onboarding can show them before login.
	api.Get("/documents/templates", handlers.ListDocumentTemplates)

	uploads := api.Group("/uploads", middleware.Protected())
	uploads.Get("/signature", handlers.GenerateUploadSignature)

	documents := api.Group("/documents", middleware.Protected())
	documents.Post("", handlers.UploadSignedDocument)
	documents.Get("/me", handlers.GetMyDocuments)
}
