package handlers

import (
	"github.com/karim9155/Tutlayt/database"
	"github.com/karim9155/Tutlayt/models"
	"github.com/karim9155/Tutlayt/scheduling"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func CreateReview(c *fiber.Ctx) error {
	reviewerID := currentUserID(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := reviewService().Create(scheduling.CreateReviewInput{
		BookingID:  bookingID,
		ReviewerID: reviewerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return schedulingError(c, err)
	}

	go refreshInterpreterRating(review.RevieweeID)

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetInterpreterReviews is public: it powers the profile page rating block.
func GetInterpreterReviews(c *fiber.Ctx) error {
	interpreterID := c.Params("interpreterId")

	var reviews []models.Review
	database.DB.Preload("Reviewer").
		Where("reviewee_id = ?", interpreterID).
		Order("created_at desc").
		Find(&reviews)

	var stats struct {
		Avg   float64
		Count int64
	}
	database.DB.Model(&models.Review{}).
		Where("reviewee_id = ?", interpreterID).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Scan(&stats)

	return c.JSON(fiber.Map{
		"reviews":        reviews,
		"average_rating": stats.Avg,
		"total_reviews":  stats.Count,
	})
}

func GetMyReceivedReviews(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var reviews []models.Review
	database.DB.Preload("Reviewer").
		Where("reviewee_id = ?", userID).
		Order("created_at desc").
		Find(&reviews)

	return c.JSON(reviews)
}

// refreshInterpreterRating keeps the denormalized avg_rating on the
// interpreter profile in step with the reviews table. Reviews aimed at a
// client user have no profile row to update; the zero-rows case is fine.
func refreshInterpreterRating(revieweeID uuid.UUID) {
	var result struct {
		Avg float64
	}
	database.DB.Model(&models.Review{}).
		Where("reviewee_id = ?", revieweeID).
		Select("COALESCE(AVG(rating), 0) as avg").
		Scan(&result)

	database.DB.Model(&models.Interpreter{}).
		Where("user_id = ?", revieweeID).
		Update("avg_rating", result.Avg)
}
