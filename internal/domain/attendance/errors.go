package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn = errors.New("you are already clocked in")
	ErrNotClockedIn     = errors.New("you have not clocked in yet")
	ErrEventNotFound    = errors.New("attendance event not found")
	ErrInvalidEventType = errors.New("event type must be 'in' or 'out'")
)
