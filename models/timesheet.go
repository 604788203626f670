package models

import "time"

// Work session statuses.
const (
	WorkSessionActive    = "active"
	WorkSessionCompleted = "completed"
)

// WorkSession is a tracked block of on-mountain time on an instructor's
// timesheet. When a session completes, an availability window with
// source "timesheet" is derived from its clock-in/clock-out times.
type WorkSession struct {
	ID           string    `bson:"id" json:"id"`
	InstructorID string    `bson:"instructorId" json:"instructorId"`
	Date         string    `bson:"date" json:"date"` // "2006-01-02"
	ClockIn      int       `bson:"clockIn" json:"clockIn"`             // minutes from midnight
	ClockOut     int       `bson:"clockOut,omitempty" json:"clockOut"` // zero while active
	Status       string    `bson:"status" json:"status"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DeriveAvailabilityPayload is the asynq task payload queued when a work
// session completes.
type DeriveAvailabilityPayload struct {
	WorkSessionID string `json:"workSessionId"`
	InstructorID  string `json:"instructorId"`
	Date          string `json:"date"`
	ClockIn       int    `json:"clockIn"`
	ClockOut      int    `json:"clockOut"`
}
