package handlers

import (
	"strconv"

	"github.com/karim9155/Tutlayt/services"
	"github.com/gofiber/fiber/v2"
)

// GetConversionRate quotes a foreign amount in Tunisian dinar so clients can
// see what a booking price corresponds to.
func GetConversionRate(c *fiber.Ctx) error {
	currency := c.Query("currency", "EUR")
	amount, err := strconv.ParseFloat(c.Query("amount", "1"), 64)
	if err != nil || amount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid amount"})
	}

	converted, err := services.ConvertToTND(amount, currency)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch exchange rates"})
	}

	return c.JSON(fiber.Map{
		"currency":   currency,
		"amount":     amount,
		"amount_tnd": converted,
	})
}
