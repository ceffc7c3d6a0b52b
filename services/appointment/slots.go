package appointment

import (
	"time"

	"bookflow/models"
)

// SlotPredicate lets a caller veto otherwise valid slots (for example to
// grey out slots shorter than the selected services' total duration).
type SlotPredicate func(models.ScheduleTimeSlot) bool

// SlotSelectable reports whether a slot can still be picked: a slot whose
// end lies before now is never selectable, and the predicate (when given)
// can only further restrict. There is no slot-level locking; two users
// picking the same slot is resolved by the booking API on confirm.
func SlotSelectable(slot models.ScheduleTimeSlot, now time.Time, allow SlotPredicate) bool {
	if slot.EndTime.Before(now) {
		return false
	}
	if allow != nil && !allow(slot) {
		return false
	}
	return true
}

// SlotKey is the "start-end" selection key carried in query parameters.
func SlotKey(slot models.ScheduleTimeSlot) string {
	return slot.StartTime.Format("15:04") + "-" + slot.EndTime.Format("15:04")
}

// AnnotatedSlot is a schedule slot decorated for rendering.
type AnnotatedSlot struct {
	models.ScheduleTimeSlot
	Key        string `json:"key"`
	Selectable bool   `json:"selectable"`
}

// AnnotateSlots decorates a day's slots with their selection key and
// selectability, recomputed against the given wall clock on every load.
func AnnotateSlots(slots []models.ScheduleTimeSlot, now time.Time, allow SlotPredicate) []AnnotatedSlot {
	annotated := make([]AnnotatedSlot, 0, len(slots))
	for _, slot := range slots {
		annotated = append(annotated, AnnotatedSlot{
			ScheduleTimeSlot: slot,
			Key:              SlotKey(slot),
			Selectable:       SlotSelectable(slot, now, allow),
		})
	}
	return annotated
}
