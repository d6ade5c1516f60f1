package scheduling

import (
	"strings"

	"github.com/google/uuid"

	"github.com/karim9155/Tutlayt/models"
)

// ReviewService creates the at-most-one review each party may leave on a
// completed booking. Reviews are immutable once written.
type ReviewService struct {
	reviews  ReviewStore
	bookings BookingStore
}

func NewReviewService(reviews ReviewStore, bookings BookingStore) *ReviewService {
	return &ReviewService{reviews: reviews, bookings: bookings}
}

type CreateReviewInput struct {
	BookingID  uuid.UUID
	ReviewerID uuid.UUID
	Rating     int
	Comment    string
}

func (s *ReviewService) Create(in CreateReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, invalid("rating", "must be between 1 and 5")
	}

	booking, err := s.bookings.Get(in.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	var revieweeID uuid.UUID
	switch in.ReviewerID {
	case booking.ClientID:
		revieweeID = booking.InterpreterID
	case booking.InterpreterID:
		revieweeID = booking.ClientID
	default:
		return nil, ErrNotAuthorized
	}

	if booking.Status != models.BookingStatusCompleted {
		return nil, invalid("booking", "reviews can only be left on completed bookings")
	}

	exists, err := s.reviews.Exists(in.BookingID, in.ReviewerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	review := &models.Review{
		BookingID:  in.BookingID,
		ReviewerID: in.ReviewerID,
		RevieweeID: revieweeID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
	}
	if err := s.reviews.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}
