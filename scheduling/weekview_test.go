package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/karim9155/Tutlayt/models"
)

// The week of 2024-05-27 (Mon) through 2024-06-02.
var weekStart = time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC)

func bucketAt(view WeekView, day int, hour int) Bucket {
	return view.Days[day].Buckets[hour]
}

func TestWeekViewBookingBeatsAvailableSlot(t *testing.T) {
	saturday := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	slots := []models.AvailabilitySlot{
		{InterpreterID: uuid.New(), Date: saturday, StartHour: 9, EndHour: 10},
	}
	bookings := []models.Booking{
		{
			ID:        uuid.New(),
			Title:     "Court hearing",
			Status:    models.BookingStatusAccepted,
			StartTime: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	view := BuildWeekView(weekStart, slots, bookings, ViewOwner)

	bucket := bucketAt(view, 5, 9) // Saturday 09:00
	if bucket.Status != BucketBooked {
		t.Fatalf("status = %q, want booked", bucket.Status)
	}
	if bucket.BookingID == nil || *bucket.BookingID != bookings[0].ID {
		t.Fatalf("booked bucket must carry the booking id")
	}
	if bucket.Title != "Court hearing" {
		t.Fatalf("title = %q", bucket.Title)
	}
}

func TestWeekViewSlotAloneIsAvailable(t *testing.T) {
	monday := weekStart
	slots := []models.AvailabilitySlot{
		{Date: monday, StartHour: 8, EndHour: 9},
	}

	view := BuildWeekView(weekStart, slots, nil, ViewOwner)

	if got := bucketAt(view, 0, 8).Status; got != BucketAvailable {
		t.Fatalf("status = %q, want available", got)
	}
	if got := bucketAt(view, 0, 9).Status; got != BucketUnavailable {
		t.Fatalf("empty hour status = %q, want unavailable", got)
	}
}

func TestWeekViewIsBookedFlagIsIndependentSignal(t *testing.T) {
	// A slot flagged booked with no matching booking row still renders
	// unavailable: the flag and the overlap check are OR-ed.
	slots := []models.AvailabilitySlot{
		{Date: weekStart, StartHour: 10, EndHour: 11, IsBooked: true},
	}

	view := BuildWeekView(weekStart, slots, nil, ViewOwner)

	if got := bucketAt(view, 0, 10).Status; got != BucketUnavailable {
		t.Fatalf("status = %q, want unavailable", got)
	}
}

func TestWeekViewPendingBookingDoesNotBlock(t *testing.T) {
	slots := []models.AvailabilitySlot{
		{Date: weekStart, StartHour: 11, EndHour: 12},
	}
	bookings := []models.Booking{
		{
			Status:    models.BookingStatusPending,
			StartTime: weekStart.Add(11 * time.Hour),
			EndTime:   weekStart.Add(12 * time.Hour),
		},
	}

	view := BuildWeekView(weekStart, slots, bookings, ViewOwner)

	if got := bucketAt(view, 0, 11).Status; got != BucketAvailable {
		t.Fatalf("status = %q, want available (pending is not a commitment)", got)
	}
}

func TestWeekViewClientPublicMasksBookings(t *testing.T) {
	bookings := []models.Booking{
		{
			ID:        uuid.New(),
			Title:     "Confidential negotiation",
			Status:    models.BookingStatusAccepted,
			StartTime: weekStart.Add(9 * time.Hour),
			EndTime:   weekStart.Add(10 * time.Hour),
		},
	}

	view := BuildWeekView(weekStart, nil, bookings, ViewClientPublic)

	bucket := bucketAt(view, 0, 9)
	if bucket.Status != BucketUnavailable {
		t.Fatalf("status = %q, want unavailable (public view)", bucket.Status)
	}
	if bucket.BookingID != nil || bucket.Title != "" {
		t.Fatalf("public view must not leak booking detail")
	}
}

func TestWeekViewPartialHourOverlapMarksBucket(t *testing.T) {
	bookings := []models.Booking{
		{
			ID:        uuid.New(),
			Status:    models.BookingStatusAccepted,
			StartTime: weekStart.Add(9*time.Hour + 30*time.Minute),
			EndTime:   weekStart.Add(10*time.Hour + 15*time.Minute),
		},
	}

	view := BuildWeekView(weekStart, nil, bookings, ViewOwner)

	if got := bucketAt(view, 0, 9).Status; got != BucketBooked {
		t.Fatalf("09:00 status = %q, want booked", got)
	}
	if got := bucketAt(view, 0, 10).Status; got != BucketBooked {
		t.Fatalf("10:00 status = %q, want booked", got)
	}
	if got := bucketAt(view, 0, 11).Status; got != BucketUnavailable {
		t.Fatalf("11:00 status = %q, want unavailable", got)
	}
}

// Full scenario: slot added, client books it, interpreter accepts, the grid
// shows the hour booked and no longer available.
func TestEndToEndBookingConsumesSlot(t *testing.T) {
	slots := newFakeSlotStore()
	bookings := newFakeBookingStore(slots)
	interpreters := newFakeInterpreterStore()
	availability := NewAvailabilityService(slots)
	engine := NewBookingService(bookings, interpreters)

	interpreterID := uuid.New()
	clientID := uuid.New()
	interpreters.add(interpreterID, 50)

	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	if err := availability.SetSlot(interpreterID, day, 14, true); err != nil {
		t.Fatalf("SetSlot error: %v", err)
	}

	booking, err := engine.Create(CreateBookingInput{
		ClientID:      clientID,
		InterpreterID: interpreterID,
		Title:         "Supplier audit",
		StartTime:     time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if booking.Status != models.BookingStatusPending {
		t.Fatalf("status = %q, want pending", booking.Status)
	}

	if _, err := engine.Accept(booking.ID, interpreterID); err != nil {
		t.Fatalf("Accept error: %v", err)
	}

	wkStart := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	weekSlots, _ := slots.List(interpreterID, wkStart, wkStart.AddDate(0, 0, 6))
	weekBookings, _ := bookings.ListForInterpreter(interpreterID)
	view := BuildWeekView(wkStart, weekSlots, weekBookings, ViewOwner)

	if got := bucketAt(view, 0, 14).Status; got != BucketBooked {
		t.Fatalf("14:00 status = %q, want booked", got)
	}

	// And the public projection no longer offers the hour.
	public := BuildWeekView(wkStart, onlyUnbooked(weekSlots), weekBookings, ViewClientPublic)
	if got := bucketAt(public, 0, 14).Status; got != BucketUnavailable {
		t.Fatalf("public 14:00 status = %q, want unavailable", got)
	}
}

func onlyUnbooked(slots []models.AvailabilitySlot) []models.AvailabilitySlot {
	var out []models.AvailabilitySlot
	for _, s := range slots {
		if !s.IsBooked {
			out = append(out, s)
		}
	}
	return out
}
