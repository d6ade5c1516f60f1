package scheduling

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/karim9155/Tutlayt/models"
)

func newReviewHarness() (*ReviewService, *fakeBookingStore, *fakeReviewStore) {
	bookings := newFakeBookingStore(nil)
	reviews := newFakeReviewStore()
	return NewReviewService(reviews, bookings), bookings, reviews
}

func completedBooking(bookings *fakeBookingStore, clientID, interpreterID uuid.UUID) *models.Booking {
	b := &models.Booking{
		ClientID:      clientID,
		InterpreterID: interpreterID,
		Status:        models.BookingStatusCompleted,
	}
	bookings.Create(b)
	return b
}

func TestCreateReviewHappyPathBothDirections(t *testing.T) {
	svc, bookings, _ := newReviewHarness()
	clientID := uuid.New()
	interpreterID := uuid.New()
	b := completedBooking(bookings, clientID, interpreterID)

	fromClient, err := svc.Create(CreateReviewInput{BookingID: b.ID, ReviewerID: clientID, Rating: 5, Comment: "  great  "})
	if err != nil {
		t.Fatalf("client review error: %v", err)
	}
	if fromClient.RevieweeID != interpreterID {
		t.Fatalf("client review reviewee = %s, want interpreter", fromClient.RevieweeID)
	}
	if fromClient.Comment != "great" {
		t.Fatalf("comment = %q, want trimmed", fromClient.Comment)
	}

	fromInterpreter, err := svc.Create(CreateReviewInput{BookingID: b.ID, ReviewerID: interpreterID, Rating: 4})
	if err != nil {
		t.Fatalf("interpreter review error: %v", err)
	}
	if fromInterpreter.RevieweeID != clientID {
		t.Fatalf("interpreter review reviewee = %s, want client", fromInterpreter.RevieweeID)
	}
}

func TestSecondReviewFromSameReviewerConflicts(t *testing.T) {
	svc, bookings, _ := newReviewHarness()
	clientID := uuid.New()
	b := completedBooking(bookings, clientID, uuid.New())

	if _, err := svc.Create(CreateReviewInput{BookingID: b.ID, ReviewerID: clientID, Rating: 5}); err != nil {
		t.Fatalf("first review error: %v", err)
	}
	_, err := svc.Create(CreateReviewInput{BookingID: b.ID, ReviewerID: clientID, Rating: 1})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestReviewRequiresCompletedBooking(t *testing.T) {
	svc, bookings, _ := newReviewHarness()
	clientID := uuid.New()

	for _, status := range []string{models.BookingStatusPending, models.BookingStatusAccepted, models.BookingStatusDeclined} {
		b := &models.Booking{ClientID: clientID, InterpreterID: uuid.New(), Status: status}
		bookings.Create(b)

		_, err := svc.Create(CreateReviewInput{BookingID: b.ID, ReviewerID: clientID, Rating: 3})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("status %q: err = %T (%v), want *ValidationError", status, err, err)
		}
	}
}

func TestReviewerMustBeBookingParty(t *testing.T) {
	svc, bookings, _ := newReviewHarness()
	b := completedBooking(bookings, uuid.New(), uuid.New())

	_, err := svc.Create(CreateReviewInput{BookingID: b.ID, ReviewerID: uuid.New(), Rating: 5})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
}

func TestReviewValidation(t *testing.T) {
	svc, bookings, _ := newReviewHarness()
	clientID := uuid.New()
	b := completedBooking(bookings, clientID, uuid.New())

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(CreateReviewInput{BookingID: b.ID, ReviewerID: clientID, Rating: rating})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("rating %d: err = %T, want *ValidationError", rating, err)
		}
	}

	if _, err := svc.Create(CreateReviewInput{BookingID: uuid.New(), ReviewerID: clientID, Rating: 3}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing booking err = %v, want ErrNotFound", err)
	}
}
