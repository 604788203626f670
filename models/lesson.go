package models

import "time"

// Lesson statuses. A cancelled lesson never blocks a slot; every other status does.
const (
	LessonStatusAvailable  = "available"
	LessonStatusScheduled  = "scheduled"
	LessonStatusInProgress = "in_progress"
	LessonStatusCompleted  = "completed"
	LessonStatusCancelled  = "cancelled"
)

// LessonSession is a booked (or bookable) lesson occupying one session slot of
// an instructor's day.
type LessonSession struct {
	ID           string      `bson:"id" json:"id"`
	InstructorID string      `bson:"instructorId" json:"instructorId"`
	Date         string      `bson:"date" json:"date"` // e.g., "2025-02-25"
	SessionType  SessionSlot `bson:"sessionType" json:"sessionType"`
	Status       string      `bson:"status" json:"status"`
	StudentIDs   []string    `bson:"studentIds,omitempty" json:"studentIds,omitempty"`
	Discipline   string      `bson:"discipline,omitempty" json:"discipline,omitempty"` // "ski" or "snowboard"
	SkillLevel   string      `bson:"skillLevel,omitempty" json:"skillLevel,omitempty"`
	Price        float64     `bson:"price,omitempty" json:"price,omitempty"`
	Currency     string      `bson:"currency,omitempty" json:"currency,omitempty"`
	Notes        string      `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// Blocks reports whether the lesson occupies its slot for booking purposes.
// Records with a missing or unknown session type or status are skipped
// (fail-open) so one malformed document cannot blank out a calendar day.
func (l LessonSession) Blocks() bool {
	if !l.SessionType.Valid() {
		return false
	}
	switch l.Status {
	case LessonStatusAvailable, LessonStatusScheduled, LessonStatusInProgress, LessonStatusCompleted:
		return true
	}
	return false
}
