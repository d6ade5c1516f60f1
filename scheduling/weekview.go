package scheduling

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/karim9155/Tutlayt/models"
)

type BucketStatus string

const (
	BucketBooked      BucketStatus = "booked"
	BucketAvailable   BucketStatus = "available"
	BucketUnavailable BucketStatus = "unavailable"
)

type ViewRole string

const (
	// ViewOwner is the interpreter looking at their own schedule: booked
	// buckets carry the mission they belong to.
	ViewOwner ViewRole = "owner"
	// ViewClientPublic is anyone else: booked hours are indistinguishable
	// from plain unavailable ones and carry no mission detail.
	ViewClientPublic ViewRole = "client-public"
)

type Bucket struct {
	Hour      int          `json:"hour"`
	Status    BucketStatus `json:"status"`
	BookingID *uuid.UUID   `json:"booking_id,omitempty"`
	Title     string       `json:"title,omitempty"`
}

type DayView struct {
	Date    time.Time  `json:"date"`
	Buckets [24]Bucket `json:"buckets"`
}

type WeekView struct {
	WeekStart time.Time  `json:"week_start"`
	Days      [7]DayView `json:"days"`
}

// BuildWeekView merges availability slots and bookings into one hour-bucket
// grid for the seven days starting at weekStart. It is a pure projection: it
// never mutates state and tolerates inconsistent inputs: a slot flagged
// is_booked with no matching booking row still renders unavailable, because
// the flag and the overlap computation are independent signals OR-ed
// together.
//
// Classification per bucket, bookings taking precedence over slots:
//   - an accepted booking overlaps the bucket          -> booked
//   - a slot covers the bucket and nothing claims it   -> available
//   - otherwise                                        -> unavailable
func BuildWeekView(weekStart time.Time, slots []models.AvailabilitySlot, bookings []models.Booking, role ViewRole) WeekView {
	weekStart = truncateToDay(weekStart)
	view := WeekView{WeekStart: weekStart}

	accepted := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == models.BookingStatusAccepted {
			accepted = append(accepted, b)
		}
	}

	slotAt := make(map[string]models.AvailabilitySlot, len(slots))
	for _, slot := range slots {
		slotAt[slotKey(slot.Date, slot.StartHour)] = slot
	}

	for d := 0; d < 7; d++ {
		day := weekStart.AddDate(0, 0, d)
		view.Days[d].Date = day

		for h := 0; h < 24; h++ {
			bucketStart := day.Add(time.Duration(h) * time.Hour)
			bucketEnd := bucketStart.Add(time.Hour)
			bucket := Bucket{Hour: h, Status: BucketUnavailable}

			if booking, ok := overlapping(accepted, bucketStart, bucketEnd); ok {
				if role == ViewOwner {
					bucket.Status = BucketBooked
					id := booking.ID
					bucket.BookingID = &id
					bucket.Title = booking.Title
				}
			} else if slot, ok := slotAt[slotKey(day, h)]; ok && !slot.IsBooked {
				bucket.Status = BucketAvailable
			}

			view.Days[d].Buckets[h] = bucket
		}
	}
	return view
}

func overlapping(bookings []models.Booking, start, end time.Time) (models.Booking, bool) {
	for _, b := range bookings {
		if b.StartTime.Before(end) && b.EndTime.After(start) {
			return b, true
		}
	}
	return models.Booking{}, false
}

func slotKey(date time.Time, hour int) string {
	return fmt.Sprintf("%s:%02d", truncateToDay(date).Format("2006-01-02"), hour)
}
