package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/karim9155/Tutlayt/models"
)

var testDay = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func TestSetSlotTwiceCreatesOneSlot(t *testing.T) {
	store := newFakeSlotStore()
	svc := NewAvailabilityService(store)
	interpreterID := uuid.New()

	if err := svc.SetSlot(interpreterID, testDay, 14, true); err != nil {
		t.Fatalf("SetSlot error: %v", err)
	}
	if err := svc.SetSlot(interpreterID, testDay, 14, true); err != nil {
		t.Fatalf("second SetSlot error: %v", err)
	}

	slots := store.all(interpreterID)
	if len(slots) != 1 {
		t.Fatalf("slot count = %d, want 1", len(slots))
	}
	if slots[0].StartHour != 14 || slots[0].EndHour != 15 {
		t.Fatalf("slot spans [%d, %d), want [14, 15)", slots[0].StartHour, slots[0].EndHour)
	}
	if slots[0].IsBooked {
		t.Fatalf("new slot must not be booked")
	}
}

func TestSetSlotRemoveAbsentIsNoop(t *testing.T) {
	store := newFakeSlotStore()
	svc := NewAvailabilityService(store)

	if err := svc.SetSlot(uuid.New(), testDay, 9, false); err != nil {
		t.Fatalf("removing absent slot should be a no-op, got %v", err)
	}
}

func TestSetSlotRemoveBookedSlotConflicts(t *testing.T) {
	store := newFakeSlotStore()
	svc := NewAvailabilityService(store)
	interpreterID := uuid.New()

	store.Insert(&models.AvailabilitySlot{
		InterpreterID: interpreterID, Date: testDay, StartHour: 9, EndHour: 10, IsBooked: true,
	})

	err := svc.SetSlot(interpreterID, testDay, 9, false)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if len(store.all(interpreterID)) != 1 {
		t.Fatalf("booked slot must not be deleted")
	}
}

func TestSetSlotRejectsOutOfRangeHour(t *testing.T) {
	svc := NewAvailabilityService(newFakeSlotStore())

	for _, hour := range []int{-1, 24, 99} {
		err := svc.SetSlot(uuid.New(), testDay, hour, true)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("hour %d: err = %T, want *ValidationError", hour, err)
		}
	}
}

func TestListSlotsHidesBookedFromNonOwners(t *testing.T) {
	store := newFakeSlotStore()
	svc := NewAvailabilityService(store)
	interpreterID := uuid.New()

	store.Insert(&models.AvailabilitySlot{InterpreterID: interpreterID, Date: testDay, StartHour: 9, EndHour: 10})
	store.Insert(&models.AvailabilitySlot{InterpreterID: interpreterID, Date: testDay, StartHour: 10, EndHour: 11, IsBooked: true})

	own, err := svc.ListSlots(interpreterID, interpreterID, testDay, testDay)
	if err != nil {
		t.Fatalf("ListSlots error: %v", err)
	}
	if len(own) != 2 {
		t.Fatalf("owner sees %d slots, want 2", len(own))
	}

	public, err := svc.ListSlots(uuid.New(), interpreterID, testDay, testDay)
	if err != nil {
		t.Fatalf("ListSlots error: %v", err)
	}
	if len(public) != 1 {
		t.Fatalf("non-owner sees %d slots, want 1", len(public))
	}
	if public[0].IsBooked {
		t.Fatalf("non-owner must never see a booked slot")
	}
}

func TestListSlotsOrderedByDateThenHour(t *testing.T) {
	store := newFakeSlotStore()
	svc := NewAvailabilityService(store)
	interpreterID := uuid.New()
	nextDay := testDay.AddDate(0, 0, 1)

	store.Insert(&models.AvailabilitySlot{InterpreterID: interpreterID, Date: nextDay, StartHour: 8, EndHour: 9})
	store.Insert(&models.AvailabilitySlot{InterpreterID: interpreterID, Date: testDay, StartHour: 15, EndHour: 16})
	store.Insert(&models.AvailabilitySlot{InterpreterID: interpreterID, Date: testDay, StartHour: 9, EndHour: 10})

	slots, err := svc.ListSlots(interpreterID, interpreterID, testDay, nextDay)
	if err != nil {
		t.Fatalf("ListSlots error: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("slot count = %d, want 3", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		if cur.Date.Before(prev.Date) || (cur.Date.Equal(prev.Date) && cur.StartHour < prev.StartHour) {
			t.Fatalf("slots out of order at %d: %v then %v", i, prev, cur)
		}
	}
}

func TestListSlotsInvalidRange(t *testing.T) {
	svc := NewAvailabilityService(newFakeSlotStore())

	_, err := svc.ListSlots(uuid.New(), uuid.New(), testDay, testDay.AddDate(0, 0, -1))
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %T, want *ValidationError", err)
	}
}
