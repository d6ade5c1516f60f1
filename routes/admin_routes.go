package routes

import (
	"github.com/karim9155/Tutlayt/handlers"
	"github.com/karim9155/Tutlayt/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/verifications/pending", handlers.ListPendingVerifications)
	admin.Put("/verifications/:userId", handlers.ProcessVerification)
	admin.Get("/dashboard-analytics", handlers.GetDashboardAnalytics)

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId/status", handlers.ToggleUserStatus)

	admin.Get("/bookings", handlers.AdminGetAllBookings)

	reviews := admin.Group("/reviews")
	reviews.Get("", handlers.AdminGetReviews)
	reviews.Delete("/:reviewId", handlers.AdminDeleteReview)

	templates := admin.Group("/document-templates")
	templates.Post("", handlers.UploadDocumentTemplate)
	templates.Delete("/:templateId", handlers.DeleteDocumentTemplate)

	requests := admin.Group("/account-requests")
	requests.Get("", handlers.ListClientAccountRequests)
	requests.Put("/:requestId", handlers.ProcessClientAccountRequest)
}
