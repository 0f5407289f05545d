package models

import (
	"time"
)

// Gameweek is one scoring period in the competition calendar
type Gameweek struct {
	// Number is the 1-based gameweek number
	Number int

	// DeadlineAt is when roster mutation locks for the gameweek
	DeadlineAt time.Time

	// EndsAt is when the gameweek's matches finish and mutation reopens
	EndsAt time.Time
}

// WindowStatus describes whether roster mutation is currently permitted
type WindowStatus struct {
	// Locked indicates roster mutation is not permitted right now
	Locked bool

	// Reason is a human-readable explanation of the current state
	Reason string

	// CurrentPeriod is the gameweek mutations currently apply to
	CurrentPeriod int

	// NextTransition is when the lock state next changes; zero after the
	// season ends
	NextTransition time.Time
}
