package models

// SessionSlot is the canonical bookable unit of an instructor's day.
type SessionSlot string

const (
	SlotMorning   SessionSlot = "morning"
	SlotAfternoon SessionSlot = "afternoon"
	SlotFullDay   SessionSlot = "full_day"
)

// Canonical clock ranges in minutes from midnight (e.g., 540 for 9:00 AM).
// The afternoon range follows the legend definition (1:00 PM - 4:00 PM) and is
// applied uniformly across display and booking paths.
const (
	MorningStart   = 9 * 60
	MorningEnd     = 12 * 60
	AfternoonStart = 13 * 60
	AfternoonEnd   = 16 * 60
	FullDayStart   = 9 * 60
	FullDayEnd     = 17 * 60
)

// AllSlots lists every slot in presentation order.
var AllSlots = []SessionSlot{SlotMorning, SlotAfternoon, SlotFullDay}

// Valid reports whether s is one of the canonical slots.
func (s SessionSlot) Valid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotFullDay:
		return true
	}
	return false
}
