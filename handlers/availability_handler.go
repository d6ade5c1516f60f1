package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SetSlotRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Hour      int    `json:"hour" validate:"min=0,max=23"`
	Available *bool  `json:"available" validate:"required"`
}

// SetAvailabilitySlot backs the paint-to-toggle grid: every painted cell is
// one idempotent upsert or delete.
func SetAvailabilitySlot(c *fiber.Ctx) error {
	interpreterID := currentUserID(c)

	var req SetSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	if err := availabilityService().SetSlot(interpreterID, date, req.Hour, *req.Available); err != nil {
		return schedulingError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Availability updated"})
}

func GetMyAvailability(c *fiber.Ctx) error {
	interpreterID := currentUserID(c)

	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slots, svcErr := availabilityService().ListSlots(interpreterID, interpreterID, from, to)
	if svcErr != nil {
		return schedulingError(c, svcErr)
	}
	return c.JSON(slots)
}

// GetInterpreterAvailability is the client-facing projection: booked slots
// are never included.
func GetInterpreterAvailability(c *fiber.Ctx) error {
	interpreterID, err := uuid.Parse(c.Params("interpreterId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid interpreter id"})
	}

	from, to, rangeErr := parseDateRange(c)
	if rangeErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": rangeErr.Error()})
	}

	slots, svcErr := availabilityService().ListSlots(uuid.Nil, interpreterID, from, to)
	if svcErr != nil {
		return schedulingError(c, svcErr)
	}
	return c.JSON(slots)
}

func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "to must be YYYY-MM-DD")
	}
	return from, to, nil
}
