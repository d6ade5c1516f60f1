package handlers

import (
	"time"

	"github.com/karim9155/Tutlayt/database"
	"github.com/karim9155/Tutlayt/models"
	"github.com/karim9155/Tutlayt/scheduling"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetMyWeekSchedule merges the interpreter's own slots and missions into one
// grid, mission detail included.
func GetMyWeekSchedule(c *fiber.Ctx) error {
	interpreterID := currentUserID(c)

	weekStart, err := parseWeekStart(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := buildWeekView(interpreterID, weekStart, scheduling.ViewOwner)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build schedule"})
	}
	return c.JSON(view)
}

// GetInterpreterWeekSchedule is the public projection of the same grid:
// booked hours are indistinguishable from unavailable ones.
func GetInterpreterWeekSchedule(c *fiber.Ctx) error {
	interpreterID, err := uuid.Parse(c.Params("interpreterId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid interpreter id"})
	}

	weekStart, parseErr := parseWeekStart(c)
	if parseErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": parseErr.Error()})
	}

	view, err := buildWeekView(interpreterID, weekStart, scheduling.ViewClientPublic)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build schedule"})
	}
	return c.JSON(view)
}

func buildWeekView(interpreterID uuid.UUID, weekStart time.Time, role scheduling.ViewRole) (scheduling.WeekView, error) {
	weekEnd := weekStart.AddDate(0, 0, 6)

	var slots []models.AvailabilitySlot
	if err := database.DB.
		Where("interpreter_id = ? AND date BETWEEN ? AND ?", interpreterID, weekStart, weekEnd).
		Find(&slots).Error; err != nil {
		return scheduling.WeekView{}, err
	}

	var bookings []models.Booking
	if err := database.DB.
		Where("interpreter_id = ? AND status = ? AND start_time < ? AND end_time > ?",
			interpreterID, models.BookingStatusAccepted, weekEnd.AddDate(0, 0, 1), weekStart).
		Find(&bookings).Error; err != nil {
		return scheduling.WeekView{}, err
	}

	return scheduling.BuildWeekView(weekStart, slots, bookings, role), nil
}

func parseWeekStart(c *fiber.Ctx) (time.Time, error) {
	weekStart, err := time.Parse("2006-01-02", c.Query("week_start"))
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "week_start must be YYYY-MM-DD")
	}
	return weekStart, nil
}
