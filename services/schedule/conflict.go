// File: services/schedule/conflict.go
package schedule

import "slopeline/models"

// Overlaps is the half-open interval overlap test for two time ranges on the
// same date: [aStart, aEnd) and [bStart, bEnd) conflict iff each starts before
// the other ends. Ranges that merely touch do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// HasConflict reports whether the proposed [start, end) range overlaps any of
// the existing windows.
func HasConflict(windows []models.AvailabilityWindow, start, end int) bool {
	for _, w := range windows {
		if Overlaps(w.Start, w.End, start, end) {
			return true
		}
	}
	return false
}
