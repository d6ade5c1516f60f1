package scheduling

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/karim9155/Tutlayt/models"
)

// GORM-backed stores. These are the only pieces of the scheduling core that
// talk to Postgres; the services above them are exercised in tests through
// in-memory fakes.

type GormSlotStore struct{ db *gorm.DB }

func NewGormSlotStore(db *gorm.DB) *GormSlotStore { return &GormSlotStore{db: db} }

func (s *GormSlotStore) List(interpreterID uuid.UUID, from, to time.Time) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	err := s.db.
		Where("interpreter_id = ? AND date BETWEEN ? AND ?", interpreterID, from, to).
		Order("date asc, start_hour asc").
		Find(&slots).Error
	return slots, err
}

func (s *GormSlotStore) Find(interpreterID uuid.UUID, date time.Time, hour int) (*models.AvailabilitySlot, error) {
	var slot models.AvailabilitySlot
	err := s.db.First(&slot, "interpreter_id = ? AND date = ? AND start_hour = ?", interpreterID, date, hour).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *GormSlotStore) Insert(slot *models.AvailabilitySlot) error {
	// The unique index on (interpreter_id, date, start_hour) backs up the
	// service-level existence check against two tabs painting the same cell.
	err := s.db.Create(slot).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (s *GormSlotStore) Delete(interpreterID uuid.UUID, date time.Time, hour int) error {
	return s.db.
		Where("interpreter_id = ? AND date = ? AND start_hour = ?", interpreterID, date, hour).
		Delete(&models.AvailabilitySlot{}).Error
}

type GormBookingStore struct{ db *gorm.DB }

func NewGormBookingStore(db *gorm.DB) *GormBookingStore { return &GormBookingStore{db: db} }

func (s *GormBookingStore) Get(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *GormBookingStore) Create(booking *models.Booking) error {
	return s.db.Create(booking).Error
}

func (s *GormBookingStore) ListAccepted(interpreterID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Where("interpreter_id = ? AND status = ? AND start_time < ? AND end_time > ?",
			interpreterID, models.BookingStatusAccepted, end, start).
		Find(&bookings).Error
	return bookings, err
}

func (s *GormBookingStore) ListForClient(clientID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Preload("Interpreter.User").
		Where("client_id = ?", clientID).
		Order("start_time desc").
		Find(&bookings).Error
	return bookings, err
}

func (s *GormBookingStore) ListForInterpreter(interpreterID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Preload("Client").
		Where("interpreter_id = ?", interpreterID).
		Order("start_time desc").
		Find(&bookings).Error
	return bookings, err
}

// Transition re-reads the booking under a row lock, rechecks the status it
// was decided against, writes the new status and flips the covered
// availability slots, all in one transaction. A transition racing against
// another one loses with ErrConflict instead of last-write-wins.
func (s *GormBookingStore) Transition(booking *models.Booking, newStatus string, effect SlotEffect) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var current models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&current, "id = ?", booking.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if current.Status != booking.Status {
			return ErrConflict
		}

		// Pending requests never block each other, so the overlap check from
		// Create has to run again here: of two overlapping pendings, only the
		// first to be accepted wins.
		if newStatus == models.BookingStatusAccepted {
			var overlapping int64
			err := tx.Model(&models.Booking{}).
				Where("interpreter_id = ? AND id <> ? AND status = ? AND start_time < ? AND end_time > ?",
					current.InterpreterID, current.ID, models.BookingStatusAccepted, current.EndTime, current.StartTime).
				Count(&overlapping).Error
			if err != nil {
				return err
			}
			if overlapping > 0 {
				return ErrConflict
			}
		}

		if err := tx.Model(&models.Booking{}).Where("id = ?", booking.ID).Update("status", newStatus).Error; err != nil {
			return err
		}

		switch effect {
		case SlotsMarkBooked:
			return setSlotBookedFlag(tx, current, true)
		case SlotsRelease:
			return setSlotBookedFlag(tx, current, false)
		}
		return nil
	})
	if err != nil {
		return err
	}
	booking.Status = newStatus
	return nil
}

func setSlotBookedFlag(tx *gorm.DB, booking models.Booking, booked bool) error {
	for _, bucket := range hourBuckets(booking.StartTime, booking.EndTime) {
		err := tx.Model(&models.AvailabilitySlot{}).
			Where("interpreter_id = ? AND date = ? AND start_hour = ?",
				booking.InterpreterID, bucket.date, bucket.hour).
			Update("is_booked", booked).Error
		if err != nil {
			return err
		}
	}
	return nil
}

type hourBucket struct {
	date time.Time
	hour int
}

// hourBuckets lists the hour cells a [start, end) window touches.
func hourBuckets(start, end time.Time) []hourBucket {
	start = start.UTC()
	end = end.UTC()

	var buckets []hourBucket
	t := start.Truncate(time.Hour)
	for t.Before(end) {
		buckets = append(buckets, hourBucket{date: truncateToDay(t), hour: t.Hour()})
		t = t.Add(time.Hour)
	}
	return buckets
}

type GormInterpreterStore struct{ db *gorm.DB }

func NewGormInterpreterStore(db *gorm.DB) *GormInterpreterStore {
	return &GormInterpreterStore{db: db}
}

func (s *GormInterpreterStore) Get(userID uuid.UUID) (*models.Interpreter, error) {
	var interpreter models.Interpreter
	err := s.db.First(&interpreter, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &interpreter, nil
}

type GormReviewStore struct{ db *gorm.DB }

func NewGormReviewStore(db *gorm.DB) *GormReviewStore { return &GormReviewStore{db: db} }

func (s *GormReviewStore) Exists(bookingID, reviewerID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Review{}).
		Where("booking_id = ? AND reviewer_id = ?", bookingID, reviewerID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormReviewStore) Create(review *models.Review) error {
	err := s.db.Create(review).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}
