package handlers

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"strconv"
	"time"

	config "github.com/karim9155/Tutlayt/configs"
	"github.com/karim9155/Tutlayt/database"
	"github.com/karim9155/Tutlayt/models"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Document buckets. Templates live at the bucket root; user uploads go under
// a per-user folder inside the bucket.
const (
	BucketInterpreterDocuments = "interpreter-documents"
	BucketSwornDocuments       = "sworn-translator-documents"
	BucketClientDocuments      = "client-documents"
)

func bucketForRole(role string, sworn bool) string {
	if role == "client" {
		return BucketClientDocuments
	}
	if sworn {
		return BucketSwornDocuments
	}
	return BucketInterpreterDocuments
}

// GenerateUploadSignature creates a signature for a direct frontend upload
// into the caller's folder.
func GenerateUploadSignature(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	sworn := false
	if user.Role == "interpreter" {
		var interpreter models.Interpreter
		if err := database.DB.First(&interpreter, "user_id = ?", userID).Error; err == nil {
			sworn = interpreter.IsSworn
		}
	}

	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse Cloudinary URL"})
	}
	secret, _ := parsedURL.User.Password()

	folder := fmt.Sprintf("%s/%s", bucketForRole(user.Role, sworn), userID)
	paramsToSign, err := api.StructToParams(uploader.UploadParams{Folder: folder})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare signature params"})
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload params"})
	}

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   cld.Config.Cloud.APIKey,
		"folder":    folder,
	})
}

// UploadSignedDocument receives a signed policy PDF or a signature image,
// stores it under the caller's folder and records it. The core never
// inspects the file contents.
func UploadSignedDocument(c *fiber.Ctx) error {
	userID := currentUserID(c)
	docType := c.FormValue("doc_type")
	if docType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "doc_type is required"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	sworn := false
	if user.Role == "interpreter" {
		var interpreter models.Interpreter
		if err := database.DB.First(&interpreter, "user_id = ?", userID).Error; err == nil {
			sworn = interpreter.IsSworn
		}
	}
	bucket := bucketForRole(user.Role, sworn)

	fileURL, err := uploadToBucket(fileHeader, bucket, userID.String(), docType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload document. Please try again."})
	}

	document := models.Document{
		OwnerID:    userID,
		DocType:    docType,
		Bucket:     bucket,
		FileURL:    fileURL,
		UploadedAt: time.Now(),
	}
	if err := database.DB.Create(&document).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record document"})
	}

	// A company's first upload moves its verification into the admin queue.
	if user.Role == "client" {
		database.DB.Model(&models.Company{}).
			Where("user_id = ? AND verification_status = ?", userID, "unverified").
			Update("verification_status", "pending_approval")
	}

	return c.Status(fiber.StatusCreated).JSON(document)
}

func GetMyDocuments(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var documents []models.Document
	database.DB.Where("owner_id = ?", userID).Order("uploaded_at desc").Find(&documents)

	return c.JSON(documents)
}

// ListDocumentTemplates returns the blank policy templates admins uploaded
// for a bucket. Template rows are owned by nobody.
func ListDocumentTemplates(c *fiber.Ctx) error {
	bucket := c.Query("bucket", BucketInterpreterDocuments)
	switch bucket {
	case BucketInterpreterDocuments, BucketSwornDocuments, BucketClientDocuments:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown bucket"})
	}

	var templates []models.Document
	database.DB.Where("owner_id = ? AND bucket = ?", uuid.Nil, bucket).
		Order("doc_type asc").
		Find(&templates)

	return c.JSON(templates)
}

func uploadToBucket(fileHeader *multipart.FileHeader, bucket, owner, docType string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     fmt.Sprintf("%s-%d", docType, time.Now().Unix()),
		Folder:       fmt.Sprintf("%s/%s", bucket, owner),
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
