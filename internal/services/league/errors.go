package league

// LeagueError is a custom error type for league-related errors
type LeagueError string

// Error implements the error interface
func (e LeagueError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTeamNotFound       LeagueError = "team not found"
	ErrCompetitorNotFound LeagueError = "competitor not found"
	ErrParticipantHasTeam LeagueError = "participant already owns a team"
	ErrWindowLocked       LeagueError = "transfer window is locked"
	ErrOutgoingRequired   LeagueError = "an outgoing competitor is required"
	ErrNotInSquad         LeagueError = "outgoing competitor is not in the squad"
	ErrPositionMismatch   LeagueError = "incoming and outgoing positions are incompatible"
	ErrChipAlreadyUsed    LeagueError = "chip has already been used this season"
	ErrAnotherChipActive  LeagueError = "another chip is already active"
	ErrChipPrecondition   LeagueError = "chip precondition not met"
	ErrChipNotCancellable LeagueError = "chip cannot be cancelled"
	ErrNoActiveChip       LeagueError = "no chip is active"
	ErrUnknownChip        LeagueError = "unknown chip"
	ErrUnknownPeriod      LeagueError = "unknown gameweek"
	ErrUnknownMetric      LeagueError = "unknown ranking metric"
	ErrNilConfig          LeagueError = "config cannot be nil"
	ErrNilCompetitorRepo  LeagueError = "competitor repository cannot be nil"
	ErrNilTeamRepo        LeagueError = "team repository cannot be nil"
	ErrNilSeasonRepo      LeagueError = "season repository cannot be nil"
	ErrNilGate            LeagueError = "window gate cannot be nil"
	ErrNilRules           LeagueError = "ruleset cannot be nil"
	ErrNilClock           LeagueError = "clock cannot be nil"
	ErrNilUUIDGenerator   LeagueError = "UUID generator cannot be nil"
)
