package models

// Chip identifies a one-time-per-season power-up
type Chip string

const (
	// ChipTripleCaptain triples the captain's score for one gameweek
	ChipTripleCaptain Chip = "triple_captain"

	// ChipBenchBoost counts bench scores toward the team total for one gameweek
	ChipBenchBoost Chip = "bench_boost"

	// ChipWildcard lifts the free-transfer limit for one gameweek
	ChipWildcard Chip = "wildcard"

	// ChipFreeHit lifts the free-transfer limit for one gameweek
	ChipFreeHit Chip = "free_hit"
)

// AllChips lists every chip a team holds at the start of a season
var AllChips = []Chip{
	ChipTripleCaptain,
	ChipBenchBoost,
	ChipWildcard,
	ChipFreeHit,
}

// Valid reports whether c is one of the known chips
func (c Chip) Valid() bool {
	for _, chip := range AllChips {
		if c == chip {
			return true
		}
	}
	return false
}

// Cancellable reports whether the chip can be reverted while still active.
// Only the transfer-relaxation chips carry an immediately reversible side
// effect; the scoring-time chips commit as soon as they activate.
func (c Chip) Cancellable() bool {
	return c == ChipWildcard || c == ChipFreeHit
}

// RelaxesTransfers reports whether activating the chip lifts the
// free-transfer limit for the rest of the gameweek
func (c Chip) RelaxesTransfers() bool {
	return c == ChipWildcard || c == ChipFreeHit
}

// ChipRecord tracks a team's chip usage for the season
type ChipRecord struct {
	// Used marks chips that have completed an active gameweek, one-time
	// per season and never reset
	Used map[Chip]bool

	// Active is the chip in effect for the current gameweek, empty when none
	Active Chip

	// PriorFree is the free-transfer count captured when a transfer chip
	// activated, restored on cancellation
	PriorFree int

	// PriorCost is the accumulated transfer cost captured when a transfer
	// chip activated, restored on cancellation
	PriorCost float64
}

// NewChipRecord returns a record with every chip unused
func NewChipRecord() ChipRecord {
	used := make(map[Chip]bool, len(AllChips))
	for _, chip := range AllChips {
		used[chip] = false
	}
	return ChipRecord{Used: used}
}

// Clone returns a deep copy of the record
func (r ChipRecord) Clone() ChipRecord {
	dup := r
	dup.Used = make(map[Chip]bool, len(r.Used))
	for chip, used := range r.Used {
		dup.Used[chip] = used
	}
	return dup
}
