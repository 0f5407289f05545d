package models

// RawStats is a finalized per-gameweek stat line for one competitor,
// produced by the statistics collaborator once the gameweek ends
type RawStats struct {
	// Goals scored in the gameweek
	Goals int

	// Assists provided in the gameweek
	Assists int

	// Saves made in the gameweek
	Saves int

	// CleanSheet indicates the competitor's side conceded no goals
	CleanSheet bool

	// OwnGoals conceded in the gameweek
	OwnGoals int

	// Played indicates the competitor took part in the gameweek
	Played bool
}
