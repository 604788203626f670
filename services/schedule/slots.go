// File: services/schedule/slots.go
package schedule

import (
	"fmt"

	"slopeline/models"
	"slopeline/utils"

	"go.uber.org/zap"
)

// SlotRange returns the canonical clock range of a slot in minutes from
// midnight. Unknown slots return (0, 0).
func SlotRange(slot models.SessionSlot) (start, end int) {
	switch slot {
	case models.SlotMorning:
		return models.MorningStart, models.MorningEnd
	case models.SlotAfternoon:
		return models.AfternoonStart, models.AfternoonEnd
	case models.SlotFullDay:
		return models.FullDayStart, models.FullDayEnd
	}
	return 0, 0
}

// RangeCoversSlot reports whether the window [winStart, winEnd) fully contains
// the slot's canonical range.
func RangeCoversSlot(winStart, winEnd int, slot models.SessionSlot) bool {
	slotStart, slotEnd := SlotRange(slot)
	if slotStart == slotEnd {
		return false
	}
	return winStart <= slotStart && winEnd >= slotEnd
}

// InferSlotFromStartHour maps a window's starting hour back into the slot
// vocabulary for display purposes.
func InferSlotFromStartHour(hour int) (models.SessionSlot, error) {
	if hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid start hour: %d", hour)
	}
	switch {
	case hour < 12:
		return models.SlotMorning, nil
	case hour < 17:
		return models.SlotAfternoon, nil
	default:
		return models.SlotFullDay, nil
	}
}

// ResolveOpenSlots computes the bookable slots for one instructor-day from the
// day's lessons and availability windows.
//
// Blocking happens first: each non-cancelled lesson removes its own slot, and a
// full-day lesson removes everything. When a morning and an afternoon lesson
// are both booked, full_day is removed too even though it was never booked
// directly. Only then is the set intersected with the declared windows; a day
// with no windows at all is treated as unconstrained rather than fully blocked.
func ResolveOpenSlots(lessons []models.LessonSession, windows []models.AvailabilityWindow) []models.SessionSlot {
	open := map[models.SessionSlot]bool{
		models.SlotMorning:   true,
		models.SlotAfternoon: true,
		models.SlotFullDay:   true,
	}

	var morningBooked, afternoonBooked bool
	for _, lesson := range lessons {
		if !lesson.Blocks() {
			if lesson.Status != models.LessonStatusCancelled {
				// Malformed records are skipped, not fatal. Keep them visible.
				utils.GetLogger().Warn("skipping malformed lesson record",
					zap.String("lessonId", lesson.ID),
					zap.String("sessionType", string(lesson.SessionType)),
					zap.String("status", lesson.Status))
			}
			continue
		}
		switch lesson.SessionType {
		case models.SlotMorning:
			open[models.SlotMorning] = false
			morningBooked = true
		case models.SlotAfternoon:
			open[models.SlotAfternoon] = false
			afternoonBooked = true
		case models.SlotFullDay:
			open[models.SlotMorning] = false
			open[models.SlotAfternoon] = false
			open[models.SlotFullDay] = false
		}
	}

	// Separate morning and afternoon bookings exhaust the day together.
	if morningBooked && afternoonBooked {
		open[models.SlotFullDay] = false
	}

	if len(windows) > 0 {
		for _, slot := range models.AllSlots {
			if !open[slot] {
				continue
			}
			covered := false
			for _, w := range windows {
				if RangeCoversSlot(w.Start, w.End, slot) {
					covered = true
					break
				}
			}
			if !covered {
				open[slot] = false
			}
		}
	}

	result := make([]models.SessionSlot, 0, len(models.AllSlots))
	for _, slot := range models.AllSlots {
		if open[slot] {
			result = append(result, slot)
		}
	}
	return result
}
