package models

// Position identifies where on the pitch a competitor plays
type Position string

const (
	// PositionGoalkeeper is the lone shot-stopper slot
	PositionGoalkeeper Position = "goalkeeper"

	// PositionDefender covers the two outfield defensive slots
	PositionDefender Position = "defender"

	// PositionWingerLeft is the left-side attacking slot
	PositionWingerLeft Position = "winger_left"

	// PositionWingerRight is the right-side attacking slot
	PositionWingerRight Position = "winger_right"
)

// AllPositions lists every valid position
var AllPositions = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionWingerLeft,
	PositionWingerRight,
}

// Bucket groups positions for bench slots and transfer compatibility
type Bucket string

const (
	// BucketDefensive holds goalkeepers and defenders
	BucketDefensive Bucket = "defensive"

	// BucketAttacking holds both winger positions
	BucketAttacking Bucket = "attacking"
)

// Bucket returns the bucket a position belongs to
func (p Position) Bucket() Bucket {
	switch p {
	case PositionGoalkeeper, PositionDefender:
		return BucketDefensive
	default:
		return BucketAttacking
	}
}

// Valid reports whether p is one of the known positions
func (p Position) Valid() bool {
	for _, pos := range AllPositions {
		if p == pos {
			return true
		}
	}
	return false
}

// SeasonTotals accumulates a competitor's statistics across scored gameweeks
type SeasonTotals struct {
	// Goals scored this season
	Goals int

	// Assists provided this season
	Assists int

	// Saves made this season
	Saves int

	// CleanSheets kept this season
	CleanSheets int

	// OwnGoals conceded this season
	OwnGoals int

	// Appearances is the number of gameweeks with the played flag set
	Appearances int

	// Points is the cumulative fantasy score across the season
	Points float64
}

// Competitor represents a draftable real-world player
type Competitor struct {
	// ID is the unique identifier for the competitor
	ID string

	// Name is the competitor's display name
	Name string

	// Position is the competitor's fixed position
	Position Position

	// Price is the competitor's cost in tenths of the currency unit
	Price int64

	// OwnerTeamID is the team that owns this competitor, empty when on the market
	OwnerTeamID string

	// Season holds the competitor's accumulated season statistics
	Season SeasonTotals

	// LastScore is the competitor's score in the most recently closed gameweek
	LastScore float64
}

// Owned reports whether the competitor belongs to any team
func (c *Competitor) Owned() bool {
	return c.OwnerTeamID != ""
}
