package handlers

import (
	"github.com/karim9155/Tutlayt/database"
	"github.com/karim9155/Tutlayt/models"
	"github.com/gofiber/fiber/v2"
)

type UpdateInterpreterProfileRequest struct {
	Bio             *string  `json:"bio"`
	City            *string  `json:"city"`
	Languages       *string  `json:"languages"`
	Specializations *string  `json:"specializations"`
	HourlyRate      *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
	YearsExperience *int     `json:"years_experience" validate:"omitempty,gte=0"`
}

func GetMyInterpreterProfile(c *fiber.Ctx) error {
	interpreterID := currentUserID(c)

	var interpreter models.Interpreter
	if err := database.DB.Preload("User").Preload("Documents").First(&interpreter, "user_id = ?", interpreterID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Interpreter profile not found"})
	}
	return c.JSON(interpreter)
}

func UpdateMyInterpreterProfile(c *fiber.Ctx) error {
	interpreterID := currentUserID(c)

	var req UpdateInterpreterProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var interpreter models.Interpreter
	if err := database.DB.First(&interpreter, "user_id = ?", interpreterID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Interpreter profile not found"})
	}

	if req.Bio != nil {
		interpreter.Bio = req.Bio
	}
	if req.City != nil {
		interpreter.City = req.City
	}
	if req.Languages != nil {
		interpreter.Languages = *req.Languages
	}
	if req.Specializations != nil {
		interpreter.Specializations = *req.Specializations
	}
	if req.HourlyRate != nil {
		interpreter.HourlyRate = *req.HourlyRate
	}
	if req.YearsExperience != nil {
		interpreter.YearsExperience = *req.YearsExperience
	}

	database.DB.Save(&interpreter)

	return c.JSON(interpreter)
}

type SwornStatusRequest struct {
	IsSworn *bool `json:"is_sworn" validate:"required"`
}

// ToggleSwornStatus flags the interpreter as a sworn translator, which
// switches the document templates they must sign.
func ToggleSwornStatus(c *fiber.Ctx) error {
	interpreterID := currentUserID(c)

	var req SwornStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result := database.DB.Model(&models.Interpreter{}).
		Where("user_id = ?", interpreterID).
		Update("is_sworn", *req.IsSworn)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update sworn status"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Interpreter profile not found"})
	}

	return c.JSON(fiber.Map{"message": "Sworn status updated"})
}

// ListInterpreters is the public search page: verified interpreters only,
// filterable by city, language and specialization.
func ListInterpreters(c *fiber.Ctx) error {
	var interpreters []models.Interpreter
	query := database.DB.Preload("User").Where("verified = ?", true)

	if city := c.Query("city"); city != "" {
		query = query.Where("city ILIKE ?", "%"+city+"%")
	}
	if language := c.Query("language"); language != "" {
		query = query.Where("languages ILIKE ?", "%"+language+"%")
	}
	if specialization := c.Query("specialization"); specialization != "" {
		query = query.Where("specializations ILIKE ?", "%"+specialization+"%")
	}
	if minRating := c.Query("min_rating"); minRating != "" {
		query = query.Where("avg_rating >= ?", minRating)
	}
	if c.Query("sworn") == "true" {
		query = query.Where("is_sworn = ?", true)
	}

	if err := query.Order("avg_rating desc").Find(&interpreters).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve interpreters"})
	}
	return c.JSON(interpreters)
}

func GetInterpreterProfile(c *fiber.Ctx) error {
	interpreterID := c.Params("interpreterId")

	var interpreter models.Interpreter
	if err := database.DB.Preload("User").First(&interpreter, "user_id = ? AND verified = ?", interpreterID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Verified interpreter not found"})
	}
	return c.JSON(interpreter)
}
