package scheduling

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/karim9155/Tutlayt/models"
)

type fakeSlotStore struct {
	slots map[string]*models.AvailabilitySlot
}

func newFakeSlotStore() *fakeSlotStore {
	return &fakeSlotStore{slots: make(map[string]*models.AvailabilitySlot)}
}

func fakeSlotKey(interpreterID uuid.UUID, date time.Time, hour int) string {
	return fmt.Sprintf("%s|%s|%d", interpreterID, date.Format("2006-01-02"), hour)
}

func (f *fakeSlotStore) List(interpreterID uuid.UUID, from, to time.Time) ([]models.AvailabilitySlot, error) {
	var out []models.AvailabilitySlot
	for _, slot := range f.slots {
		if slot.InterpreterID != interpreterID {
			continue
		}
		if slot.Date.Before(from) || slot.Date.After(to) {
			continue
		}
		out = append(out, *slot)
	}
	return out, nil
}

func (f *fakeSlotStore) Find(interpreterID uuid.UUID, date time.Time, hour int) (*models.AvailabilitySlot, error) {
	slot, ok := f.slots[fakeSlotKey(interpreterID, date, hour)]
	if !ok {
		return nil, nil
	}
	copied := *slot
	return &copied, nil
}

func (f *fakeSlotStore) Insert(slot *models.AvailabilitySlot) error {
	slot.ID = uuid.New()
	f.slots[fakeSlotKey(slot.InterpreterID, slot.Date, slot.StartHour)] = slot
	return nil
}

func (f *fakeSlotStore) Delete(interpreterID uuid.UUID, date time.Time, hour int) error {
	delete(f.slots, fakeSlotKey(interpreterID, date, hour))
	return nil
}

func (f *fakeSlotStore) all(interpreterID uuid.UUID) []models.AvailabilitySlot {
	var out []models.AvailabilitySlot
	for _, slot := range f.slots {
		if slot.InterpreterID == interpreterID {
			out = append(out, *slot)
		}
	}
	return out
}

// fakeBookingStore mirrors GormBookingStore, including the slot flip applied
// during Transition when it is wired to a fakeSlotStore.
type fakeBookingStore struct {
	bookings map[uuid.UUID]*models.Booking
	slots    *fakeSlotStore
}

func newFakeBookingStore(slots *fakeSlotStore) *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[uuid.UUID]*models.Booking), slots: slots}
}

func (f *fakeBookingStore) Get(id uuid.UUID) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingStore) Create(booking *models.Booking) error {
	booking.ID = uuid.New()
	stored := *booking
	f.bookings[booking.ID] = &stored
	return nil
}

func (f *fakeBookingStore) ListAccepted(interpreterID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.InterpreterID != interpreterID || b.Status != models.BookingStatusAccepted {
			continue
		}
		if b.StartTime.Before(end) && b.EndTime.After(start) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) ListForClient(clientID uuid.UUID) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) ListForInterpreter(interpreterID uuid.UUID) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.InterpreterID == interpreterID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) Transition(booking *models.Booking, newStatus string, effect SlotEffect) error {
	stored, ok := f.bookings[booking.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Status != booking.Status {
		return ErrConflict
	}
	if newStatus == models.BookingStatusAccepted {
		for _, other := range f.bookings {
			if other.ID == stored.ID || other.InterpreterID != stored.InterpreterID {
				continue
			}
			if other.Status == models.BookingStatusAccepted &&
				other.StartTime.Before(stored.EndTime) && other.EndTime.After(stored.StartTime) {
				return ErrConflict
			}
		}
	}
	stored.Status = newStatus
	booking.Status = newStatus

	if f.slots == nil || effect == SlotsUntouched {
		return nil
	}
	booked := effect == SlotsMarkBooked
	for _, bucket := range hourBuckets(stored.StartTime, stored.EndTime) {
		key := fakeSlotKey(stored.InterpreterID, bucket.date, bucket.hour)
		if slot, ok := f.slots.slots[key]; ok {
			slot.IsBooked = booked
		}
	}
	return nil
}

type fakeInterpreterStore struct {
	interpreters map[uuid.UUID]*models.Interpreter
}

func newFakeInterpreterStore() *fakeInterpreterStore {
	return &fakeInterpreterStore{interpreters: make(map[uuid.UUID]*models.Interpreter)}
}

func (f *fakeInterpreterStore) Get(userID uuid.UUID) (*models.Interpreter, error) {
	interpreter, ok := f.interpreters[userID]
	if !ok {
		return nil, nil
	}
	copied := *interpreter
	return &copied, nil
}

func (f *fakeInterpreterStore) add(userID uuid.UUID, hourlyRate float64) {
	f.interpreters[userID] = &models.Interpreter{UserID: userID, HourlyRate: hourlyRate, Verified: true}
}

type fakeReviewStore struct {
	reviews map[string]*models.Review
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: make(map[string]*models.Review)}
}

func (f *fakeReviewStore) Exists(bookingID, reviewerID uuid.UUID) (bool, error) {
	_, ok := f.reviews[bookingID.String()+"|"+reviewerID.String()]
	return ok, nil
}

func (f *fakeReviewStore) Create(review *models.Review) error {
	key := review.BookingID.String() + "|" + review.ReviewerID.String()
	if _, ok := f.reviews[key]; ok {
		return ErrConflict
	}
	review.ID = uuid.New()
	stored := *review
	f.reviews[key] = &stored
	return nil
}
