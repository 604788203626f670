package models

import "time"

// Availability window sources.
const (
	AvailabilitySourceManual    = "manual"
	AvailabilitySourceTimesheet = "timesheet"
)

// AvailabilityWindow is a continuous block of time an instructor has declared
// bookable on a single date. For a given instructor+date no two windows may
// have overlapping [Start, End) ranges.
type AvailabilityWindow struct {
	ID           string    `bson:"id" json:"id"`
	InstructorID string    `bson:"instructorId" json:"instructorId"`
	Date         string    `bson:"date" json:"date"`     // e.g., "2025-02-25"
	Start        int       `bson:"start" json:"start"`   // minutes from midnight
	End          int       `bson:"end" json:"end"`       // minutes from midnight
	Source       string    `bson:"source" json:"source"` // "manual" or "timesheet"
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UpdateAvailabilityRequest carries an instructor's edited selection of
// available dates plus the working window to apply to each of them.
type UpdateAvailabilityRequest struct {
	InstructorID string   `json:"instructorId"`
	Dates        []string `json:"dates" binding:"required"`     // desired set, "2006-01-02"
	StartTime    string   `json:"startTime" binding:"required"` // "HH:MM"
	EndTime      string   `json:"endTime" binding:"required"`   // "HH:MM"
	Source       string   `json:"source,omitempty"`
}

// WeeklyPatternRequest declares a recurring weekly availability pattern to be
// expanded over a horizon of whole weeks starting from From.
type WeeklyPatternRequest struct {
	InstructorID string         `json:"instructorId"`
	Weekdays     []time.Weekday `json:"weekdays" binding:"required"`
	From         string         `json:"from" binding:"required"` // "2006-01-02"
	Weeks        int            `json:"weeks" binding:"required,min=1,max=12"`
	StartTime    string         `json:"startTime" binding:"required"`
	EndTime      string         `json:"endTime" binding:"required"`
}
