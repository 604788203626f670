package handlers

import (
	instructorRepo "slopeline/database/repository/instructor"
)

// HandlerBundle aggregates the handlers wired in main for route registration.
type HandlerBundle struct {
	InstructorRepo instructorRepo.InstructorRepository

	Instructor *InstructorHandler
	Schedule   *ScheduleHandler
	Booking    *BookingHandler
	Timesheet  *TimesheetHandler
}
