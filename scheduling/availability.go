package scheduling

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/karim9155/Tutlayt/models"
)

// AvailabilityService owns the interpreter's open-hour grid. Slots are
// hour-long, keyed by (interpreter, date, hour), and toggled idempotently:
// painting the same cell twice never creates duplicates, clearing an empty
// cell is a no-op.
type AvailabilityService struct {
	slots SlotStore
}

func NewAvailabilityService(slots SlotStore) *AvailabilityService {
	return &AvailabilityService{slots: slots}
}

// ListSlots returns the slots in [from, to] ascending by (date, hour). A
// viewer other than the owning interpreter only sees unbooked slots.
func (s *AvailabilityService) ListSlots(viewerID, interpreterID uuid.UUID, from, to time.Time) ([]models.AvailabilitySlot, error) {
	if to.Before(from) {
		return nil, invalid("date_range", "end date before start date")
	}

	slots, err := s.slots.List(interpreterID, truncateToDay(from), truncateToDay(to))
	if err != nil {
		return nil, err
	}

	if viewerID != interpreterID {
		visible := make([]models.AvailabilitySlot, 0, len(slots))
		for _, slot := range slots {
			if !slot.IsBooked {
				visible = append(visible, slot)
			}
		}
		slots = visible
	}

	sort.Slice(slots, func(i, j int) bool {
		if !slots[i].Date.Equal(slots[j].Date) {
			return slots[i].Date.Before(slots[j].Date)
		}
		return slots[i].StartHour < slots[j].StartHour
	})
	return slots, nil
}

// SetSlot is the idempotent upsert/delete behind the paint-to-toggle grid.
// Clearing an hour whose slot is already consumed by a booking is refused.
func (s *AvailabilityService) SetSlot(interpreterID uuid.UUID, date time.Time, hour int, available bool) error {
	if hour < 0 || hour > 23 {
		return invalid("hour", "must be between 0 and 23")
	}
	date = truncateToDay(date)

	existing, err := s.slots.Find(interpreterID, date, hour)
	if err != nil {
		return err
	}

	if available {
		if existing != nil {
			return nil
		}
		return s.slots.Insert(&models.AvailabilitySlot{
			InterpreterID: interpreterID,
			Date:          date,
			StartHour:     hour,
			EndHour:       hour + 1,
		})
	}

	if existing == nil {
		return nil
	}
	if existing.IsBooked {
		return ErrConflict
	}
	return s.slots.Delete(interpreterID, date, hour)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
