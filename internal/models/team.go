package models

import (
	"time"
)

// Transfers tracks a team's transfer allowance within the current gameweek
type Transfers struct {
	// Free is the number of penalty-free transfers remaining this gameweek
	Free int

	// Cost is the accumulated point penalty for this gameweek's extra transfers
	Cost float64

	// Made is the lifetime number of transfers the team has made
	Made int
}

// Team represents a participant's fantasy roster
type Team struct {
	// ID is the unique identifier for the team
	ID string

	// ParticipantID is the owning participant, set once at creation
	ParticipantID string

	// Name is the team's display name
	Name string

	// Starting holds the five starting competitor IDs in slot order:
	// goalkeeper, defender, defender, left winger, right winger
	Starting []string

	// Bench holds the three substitute competitor IDs in slot order:
	// one defensive slot followed by two attacking slots
	Bench []string

	// CaptainID is the designated captain, always a squad member
	CaptainID string

	// ViceCaptainID is the designated vice-captain, always a squad member
	// and never the captain
	ViceCaptainID string

	// Budget is the remaining budget in tenths of the currency unit
	Budget int64

	// CumulativePoints is the season total
	CumulativePoints float64

	// LastPeriodPoints is the score from the most recently closed gameweek
	LastPeriodPoints float64

	// Transfers tracks the current gameweek's transfer allowance
	Transfers Transfers

	// Chips tracks power-up usage and activation
	Chips ChipRecord

	// CreatedAt is when the team was created
	CreatedAt time.Time

	// UpdatedAt is when the team was last updated
	UpdatedAt time.Time
}

// SquadIDs returns the starting and bench competitor IDs in slot order
func (t *Team) SquadIDs() []string {
	ids := make([]string, 0, len(t.Starting)+len(t.Bench))
	ids = append(ids, t.Starting...)
	ids = append(ids, t.Bench...)
	return ids
}

// HasCompetitor reports whether the competitor is in the squad
func (t *Team) HasCompetitor(competitorID string) bool {
	for _, id := range t.SquadIDs() {
		if id == competitorID {
			return true
		}
	}
	return false
}

// ReplaceCompetitor swaps outgoing for incoming in every slot and leadership
// reference that named the outgoing competitor
func (t *Team) ReplaceCompetitor(outgoingID, incomingID string) {
	for i, id := range t.Starting {
		if id == outgoingID {
			t.Starting[i] = incomingID
		}
	}
	for i, id := range t.Bench {
		if id == outgoingID {
			t.Bench[i] = incomingID
		}
	}
	if t.CaptainID == outgoingID {
		t.CaptainID = incomingID
	}
	if t.ViceCaptainID == outgoingID {
		t.ViceCaptainID = incomingID
	}
}

// Clone returns a deep copy of the team, used to build transfer candidates
// without mutating the stored record
func (t *Team) Clone() *Team {
	dup := *t
	dup.Starting = append([]string(nil), t.Starting...)
	dup.Bench = append([]string(nil), t.Bench...)
	dup.Chips = t.Chips.Clone()
	return &dup
}
