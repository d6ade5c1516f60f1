package handlers

import (
	"errors"

	"github.com/karim9155/Tutlayt/database"
	"github.com/karim9155/Tutlayt/scheduling"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func currentUserID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	id, _ := uuid.Parse(claims["user_id"].(string))
	return id
}

func availabilityService() *scheduling.AvailabilityService {
	return scheduling.NewAvailabilityService(scheduling.NewGormSlotStore(database.DB))
}

func bookingService() *scheduling.BookingService {
	return scheduling.NewBookingService(
		scheduling.NewGormBookingStore(database.DB),
		scheduling.NewGormInterpreterStore(database.DB),
	)
}

func reviewService() *scheduling.ReviewService {
	return scheduling.NewReviewService(
		scheduling.NewGormReviewStore(database.DB),
		scheduling.NewGormBookingStore(database.DB),
	)
}

// schedulingError maps the core's error taxonomy onto HTTP statuses.
func schedulingError(c *fiber.Ctx, err error) error {
	var vErr *scheduling.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Error()})
	case errors.Is(err, scheduling.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, scheduling.ErrNotAuthorized):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have permission to perform this action"})
	case errors.Is(err, scheduling.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Booking status does not allow this action"})
	case errors.Is(err, scheduling.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "The requested time conflicts with an existing commitment"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}
}
