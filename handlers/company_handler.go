package handlers

import (
	"github.com/karim9155/Tutlayt/database"
	"github.com/karim9155/Tutlayt/models"
	"github.com/gofiber/fiber/v2"
)

type UpdateCompanyProfileRequest struct {
	CompanyName *string `json:"company_name"`
	Website     *string `json:"website" validate:"omitempty,url"`
}

func GetMyCompanyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var company models.Company
	if err := database.DB.Preload("User").Preload("Documents").First(&company, "user_id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company profile not found"})
	}
	return c.JSON(company)
}

func UpdateMyCompanyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req UpdateCompanyProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var company models.Company
	if err := database.DB.First(&company, "user_id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company profile not found"})
	}

	if req.CompanyName != nil {
		company.CompanyName = *req.CompanyName
	}
	if req.Website != nil {
		company.Website = req.Website
	}

	database.DB.Save(&company)

	return c.JSON(company)
}

type ClientAccountRequestInput struct {
	CompanyName string  `json:"company_name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Message     string  `json:"message" validate:"required"`
}

// SubmitClientAccountRequest is the public intake form for companies that
// want an account; an admin reviews the queue.
func SubmitClientAccountRequest(c *fiber.Ctx) error {
	var req ClientAccountRequestInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	request := models.ClientAccountRequest{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Website:     req.Website,
		Message:     req.Message,
	}
	if err := database.DB.Create(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong. Please try again."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Request submitted. Our team will contact you shortly."})
}
