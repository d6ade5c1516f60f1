package scheduling

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/karim9155/Tutlayt/models"
)

// validTransitions is the booking lifecycle: a pending request is accepted,
// declined or cancelled; an accepted mission is completed or cancelled.
// Declined, completed and cancelled are terminal.
var validTransitions = map[string][]string{
	models.BookingStatusPending:  {models.BookingStatusAccepted, models.BookingStatusDeclined, models.BookingStatusCancelled},
	models.BookingStatusAccepted: {models.BookingStatusCompleted, models.BookingStatusCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type BookingService struct {
	bookings     BookingStore
	interpreters InterpreterStore
}

func NewBookingService(bookings BookingStore, interpreters InterpreterStore) *BookingService {
	return &BookingService{bookings: bookings, interpreters: interpreters}
}

type CreateBookingInput struct {
	ClientID      uuid.UUID
	InterpreterID uuid.UUID
	Reference     string
	Title         string
	Platform      string
	StartTime     time.Time
	EndTime       time.Time
	Timezone      string
	Languages     string
	SubjectMatter string
	// Price <= 0 means "not supplied": it is computed from the duration and
	// the interpreter's hourly rate.
	Price                   float64
	Currency                string
	Description             string
	MeetingLink             *string
	PreparationMaterialsURL *string
}

// Create validates the request, checks the window against the interpreter's
// accepted missions and persists the booking as pending. The request never
// touches availability slots; those are only consumed on accept.
func (s *BookingService) Create(in CreateBookingInput) (*models.Booking, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalid("title", "is required")
	}
	if !in.EndTime.After(in.StartTime) {
		return nil, invalid("end_time", "must be after start_time")
	}

	interpreter, err := s.interpreters.Get(in.InterpreterID)
	if err != nil {
		return nil, err
	}
	if interpreter == nil {
		return nil, ErrNotFound
	}

	overlapping, err := s.bookings.ListAccepted(in.InterpreterID, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, ErrConflict
	}

	price := in.Price
	if price <= 0 {
		price = ComputePrice(in.StartTime, in.EndTime, interpreter.HourlyRate)
	}
	currency := in.Currency
	if currency == "" {
		currency = "TND"
	}

	booking := &models.Booking{
		Reference:               in.Reference,
		ClientID:                in.ClientID,
		InterpreterID:           in.InterpreterID,
		Title:                   strings.TrimSpace(in.Title),
		Platform:                in.Platform,
		StartTime:               in.StartTime.UTC(),
		EndTime:                 in.EndTime.UTC(),
		Timezone:                in.Timezone,
		Languages:               in.Languages,
		SubjectMatter:           in.SubjectMatter,
		Price:                   price,
		Currency:                currency,
		Description:             in.Description,
		MeetingLink:             in.MeetingLink,
		PreparationMaterialsURL: in.PreparationMaterialsURL,
		Status:                  models.BookingStatusPending,
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ComputePrice is durationHours x hourlyRate, clamped to zero for
// non-positive durations.
func ComputePrice(start, end time.Time, hourlyRate float64) float64 {
	hours := end.Sub(start).Hours()
	if hours <= 0 {
		return 0
	}
	return hours * hourlyRate
}

// Accept transitions a pending booking to accepted and marks the availability
// slots its window covers as booked, atomically.
func (s *BookingService) Accept(bookingID, interpreterID uuid.UUID) (*models.Booking, error) {
	return s.transitionByInterpreter(bookingID, interpreterID, models.BookingStatusAccepted, SlotsMarkBooked)
}

// Decline transitions a pending booking to declined.
func (s *BookingService) Decline(bookingID, interpreterID uuid.UUID) (*models.Booking, error) {
	return s.transitionByInterpreter(bookingID, interpreterID, models.BookingStatusDeclined, SlotsUntouched)
}

// InterpreterMarkComplete is the interpreter closing out an accepted mission.
// ClientConfirmComplete exists separately; which one is canonical is a
// product decision, so both are exposed under their own names.
func (s *BookingService) InterpreterMarkComplete(bookingID, interpreterID uuid.UUID) (*models.Booking, error) {
	return s.transitionByInterpreter(bookingID, interpreterID, models.BookingStatusCompleted, SlotsUntouched)
}

// ClientConfirmComplete is the client confirming an accepted mission happened.
func (s *BookingService) ClientConfirmComplete(bookingID, clientID uuid.UUID) (*models.Booking, error) {
	return s.transitionByClient(bookingID, clientID, models.BookingStatusCompleted, SlotsUntouched)
}

// Cancel lets the client withdraw a booking. Cancelling an accepted booking
// releases the slots it had consumed.
func (s *BookingService) Cancel(bookingID, clientID uuid.UUID) (*models.Booking, error) {
	booking, err := s.fetch(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ClientID != clientID {
		return nil, ErrNotAuthorized
	}
	effect := SlotsUntouched
	if booking.Status == models.BookingStatusAccepted {
		effect = SlotsRelease
	}
	return s.apply(booking, models.BookingStatusCancelled, effect)
}

func (s *BookingService) Get(bookingID uuid.UUID) (*models.Booking, error) {
	return s.fetch(bookingID)
}

func (s *BookingService) ListForClient(clientID uuid.UUID) ([]models.Booking, error) {
	return s.bookings.ListForClient(clientID)
}

func (s *BookingService) ListForInterpreter(interpreterID uuid.UUID) ([]models.Booking, error) {
	return s.bookings.ListForInterpreter(interpreterID)
}

func (s *BookingService) transitionByInterpreter(bookingID, interpreterID uuid.UUID, newStatus string, effect SlotEffect) (*models.Booking, error) {
	booking, err := s.fetch(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.InterpreterID != interpreterID {
		return nil, ErrNotAuthorized
	}
	return s.apply(booking, newStatus, effect)
}

func (s *BookingService) transitionByClient(bookingID, clientID uuid.UUID, newStatus string, effect SlotEffect) (*models.Booking, error) {
	booking, err := s.fetch(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ClientID != clientID {
		return nil, ErrNotAuthorized
	}
	return s.apply(booking, newStatus, effect)
}

// fetch distinguishes "no such booking" from every other failure so callers
// can answer 404 vs 403 honestly instead of a zero-rows-updated silent pass.
func (s *BookingService) fetch(bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := s.bookings.Get(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	return booking, nil
}

func (s *BookingService) apply(booking *models.Booking, newStatus string, effect SlotEffect) (*models.Booking, error) {
	if !transitionAllowed(booking.Status, newStatus) {
		return nil, ErrInvalidTransition
	}
	if err := s.bookings.Transition(booking, newStatus, effect); err != nil {
		return nil, err
	}
	return booking, nil
}
