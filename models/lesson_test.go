package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLessonBlocks(t *testing.T) {
	tests := []struct {
		name   string
		slot   SessionSlot
		status string
		want   bool
	}{
		{name: "scheduled morning blocks", slot: SlotMorning, status: LessonStatusScheduled, want: true},
		{name: "available blocks", slot: SlotAfternoon, status: LessonStatusAvailable, want: true},
		{name: "in progress blocks", slot: SlotFullDay, status: LessonStatusInProgress, want: true},
		{name: "completed blocks", slot: SlotMorning, status: LessonStatusCompleted, want: true},
		{name: "cancelled never blocks", slot: SlotFullDay, status: LessonStatusCancelled, want: false},
		{name: "unknown status never blocks", slot: SlotMorning, status: "archived", want: false},
		{name: "empty status never blocks", slot: SlotMorning, status: "", want: false},
		{name: "unknown session type never blocks", slot: "evening", status: LessonStatusScheduled, want: false},
		{name: "empty session type never blocks", slot: "", status: LessonStatusScheduled, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := LessonSession{SessionType: tc.slot, Status: tc.status}
			assert.Equal(t, tc.want, l.Blocks())
		})
	}
}

func TestSessionSlotValid(t *testing.T) {
	assert.True(t, SlotMorning.Valid())
	assert.True(t, SlotAfternoon.Valid())
	assert.True(t, SlotFullDay.Valid())
	assert.False(t, SessionSlot("evening").Valid())
	assert.False(t, SessionSlot("").Valid())
}
