package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/karim9155/Tutlayt/models"
)

// SlotEffect tells the booking store what to do with the availability slots
// overlapping a booking's window when its status changes. The store applies
// the status change and the slot flips in one transaction.
type SlotEffect int

const (
	SlotsUntouched SlotEffect = iota
	SlotsMarkBooked
	SlotsRelease
)

type SlotStore interface {
	// List returns the interpreter's slots in [from, to], ascending by
	// (date, start_hour).
	List(interpreterID uuid.UUID, from, to time.Time) ([]models.AvailabilitySlot, error)
	// Find returns nil (no error) when no slot exists at that key.
	Find(interpreterID uuid.UUID, date time.Time, hour int) (*models.AvailabilitySlot, error)
	Insert(slot *models.AvailabilitySlot) error
	Delete(interpreterID uuid.UUID, date time.Time, hour int) error
}

type BookingStore interface {
	// Get returns nil (no error) when the booking does not exist.
	Get(id uuid.UUID) (*models.Booking, error)
	Create(booking *models.Booking) error
	// ListAccepted returns the interpreter's accepted bookings overlapping
	// [start, end).
	ListAccepted(interpreterID uuid.UUID, start, end time.Time) ([]models.Booking, error)
	ListForClient(clientID uuid.UUID) ([]models.Booking, error)
	ListForInterpreter(interpreterID uuid.UUID) ([]models.Booking, error)
	// Transition persists the new status and applies the slot effect
	// atomically, locking the booking row against concurrent transitions.
	Transition(booking *models.Booking, newStatus string, effect SlotEffect) error
}

type InterpreterStore interface {
	// Get returns nil (no error) when no such interpreter profile exists.
	Get(userID uuid.UUID) (*models.Interpreter, error)
}

type ReviewStore interface {
	Exists(bookingID, reviewerID uuid.UUID) (bool, error)
	Create(review *models.Review) error
}
