package handlers

import (
	"time"

	"github.com/karim9155/Tutlayt/database"
	"github.com/karim9155/Tutlayt/models"
	"github.com/karim9155/Tutlayt/notifications"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPendingVerifications feeds the admin review console: companies that
// started uploading documents and interpreters not yet verified.
func ListPendingVerifications(c *fiber.Ctx) error {
	var companies []models.Company
	if err := database.DB.Preload("User").Preload("Documents").
		Where("verification_status = ?", "pending_approval").
		Find(&companies).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var interpreters []models.Interpreter
	if err := database.DB.Preload("User").Preload("Documents").
		Where("verified = ?", false).
		Find(&interpreters).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"companies":    companies,
		"interpreters": interpreters,
	})
}

type VerificationDecisionRequest struct {
	AccountType string `json:"account_type" validate:"required,oneof=client interpreter"`
	Decision    string `json:"decision" validate:"required,oneof=approve deny"`
	Reason      string `json:"reason"`
}

// ProcessVerification approves or denies a pending account. Denial records
// the reason and resets the uploaded documents so the user re-signs from
// scratch.
func ProcessVerification(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req VerificationDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Decision == "deny" && req.Reason == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A reason is required when denying"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		approve := req.Decision == "approve"

		if req.AccountType == "client" {
			updates := map[string]interface{}{"rejection_reason": nil, "verification_status": "verified"}
			if !approve {
				updates["verification_status"] = "rejected"
				updates["rejection_reason"] = req.Reason
			}
			result := tx.Model(&models.Company{}).Where("user_id = ?", userID).Updates(updates)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		} else {
			updates := map[string]interface{}{"rejection_reason": nil, "verified": true}
			if !approve {
				updates["verified"] = false
				updates["rejection_reason"] = req.Reason
			}
			result := tx.Model(&models.Interpreter{}).Where("user_id = ?", userID).Updates(updates)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		if !approve {
			if err := tx.Where("owner_id = ?", userID).Delete(&models.Document{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found for that account type"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process verification"})
	}

	switch req.Decision {
	case "approve":
		go notifications.SendEmail(user.FullName, user.Email,
			"Your Account is Verified",
			"<h1>Verification Complete</h1><p>Your account has been verified. You now have full access to the platform.</p>")
	case "deny":
		go notifications.SendEmail(user.FullName, user.Email,
			"Update on Your Verification",
			"<h1>Verification Update</h1><p>Your verification was not approved: "+req.Reason+". Please re-upload your documents.</p>")
	}

	return c.JSON(fiber.Map{"message": "Verification processed"})
}

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(users)
}

func ToggleUserStatus(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = !user.IsActive
	database.DB.Save(&user)

	return c.JSON(fiber.Map{"message": "User status updated", "is_active": user.IsActive})
}

func AdminGetAllBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	query := database.DB.Preload("Client").Preload("Interpreter.User").Order("start_time desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(bookings)
}

func AdminGetReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	if err := database.DB.Preload("Reviewer").Order("created_at desc").Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(reviews)
}

func AdminDeleteReview(c *fiber.Ctx) error {
	reviewID := c.Params("reviewId")

	var review models.Review
	if err := database.DB.First(&review, "id = ?", reviewID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}

	database.DB.Delete(&review)
	go refreshInterpreterRating(review.RevieweeID)

	return c.SendStatus(fiber.StatusNoContent)
}

// UploadDocumentTemplate publishes a blank policy template into one of the
// document buckets. Template rows have no owner.
func UploadDocumentTemplate(c *fiber.Ctx) error {
	bucket := c.FormValue("bucket")
	switch bucket {
	case BucketInterpreterDocuments, BucketSwornDocuments, BucketClientDocuments:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown bucket"})
	}
	docType := c.FormValue("doc_type")
	if docType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "doc_type is required"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	fileURL, err := uploadToBucket(fileHeader, bucket, "templates", docType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload template"})
	}

	template := models.Document{
		OwnerID:    uuid.Nil,
		DocType:    docType,
		Bucket:     bucket,
		FileURL:    fileURL,
		UploadedAt: time.Now(),
	}
	if err := database.DB.Create(&template).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record template"})
	}

	return c.Status(fiber.StatusCreated).JSON(template)
}

func DeleteDocumentTemplate(c *fiber.Ctx) error {
	templateID := c.Params("templateId")

	result := database.DB.Where("id = ? AND owner_id = ?", templateID, uuid.Nil).Delete(&models.Document{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete template"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func ListClientAccountRequests(c *fiber.Ctx) error {
	var requests []models.ClientAccountRequest
	if err := database.DB.Order("created_at desc").Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(requests)
}

func ProcessClientAccountRequest(c *fiber.Ctx) error {
	requestID := c.Params("requestId")

	type ProcessRequest struct {
		Status string `json:"status" validate:"required,oneof=contacted closed"`
	}
	var req ProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result := database.DB.Model(&models.ClientAccountRequest{}).
		Where("id = ?", requestID).
		Update("status", req.Status)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update request"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
	}

	return c.JSON(fiber.Map{"message": "Request updated"})
}

func GetDashboardAnalytics(c *fiber.Ctx) error {
	var totalUsers, totalInterpreters, pendingVerifications int64
	database.DB.Model(&models.User{}).Count(&totalUsers)
	database.DB.Model(&models.Interpreter{}).Where("verified = ?", true).Count(&totalInterpreters)
	database.DB.Model(&models.Company{}).Where("verification_status = ?", "pending_approval").Count(&pendingVerifications)

	type StatusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var bookingsByStatus []StatusCount
	database.DB.Model(&models.Booking{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&bookingsByStatus)

	var completedVolume float64
	database.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusCompleted).
		Select("COALESCE(SUM(price), 0)").
		Scan(&completedVolume)

	return c.JSON(fiber.Map{
		"total_users":           totalUsers,
		"verified_interpreters": totalInterpreters,
		"pending_verifications": pendingVerifications,
		"bookings_by_status":    bookingsByStatus,
		"completed_volume":      completedVolume,
	})
}
