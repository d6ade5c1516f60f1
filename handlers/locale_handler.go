package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// GetLocale serves the UI translation bundle for one of the supported
// languages. The market is trilingual: Arabic, French and English.
func GetLocale(c *fiber.Ctx) error {
	lang := c.Params("lang")

	switch lang {
	case "ar", "fr", "en":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported language"})
	}

	filePath := filepath.Join("locales", fmt.Sprintf("%s.json", lang))

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Language file not found"})
	}

	return c.SendFile(filePath)
}
