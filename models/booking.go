package models

// BookingRequest is a student's intent to book one session slot with an
// instructor on a date.
type BookingRequest struct {
	UserID       string      `json:"userId"`
	InstructorID string      `json:"instructorId" binding:"required"`
	Date         string      `json:"date" binding:"required"` // "2006-01-02"
	Slot         SessionSlot `json:"slot" binding:"required"`
	Discipline   string      `json:"discipline,omitempty"`
	SkillLevel   string      `json:"skillLevel,omitempty"`
	Method       string      `json:"method"` // payment method, defaults to "card"
}

// BookingResponse returns the created lesson together with its invoice.
type BookingResponse struct {
	Lesson  LessonSession `json:"lesson"`
	Invoice *Invoice      `json:"invoice,omitempty"`
}
