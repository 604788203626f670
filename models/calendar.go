package models

// CalendarDay is one cell of the padded month grid. It is derived on every
// load and never persisted or mutated incrementally.
type CalendarDay struct {
	Date           string               `json:"date"` // "2006-01-02"
	IsCurrentMonth bool                 `json:"isCurrentMonth"`
	IsToday        bool                 `json:"isToday"`
	Lessons        []LessonSession      `json:"lessons,omitempty"`
	Availability   []AvailabilityWindow `json:"availability,omitempty"`
	OpenSlots      []SessionSlot        `json:"openSlots"`
}
