package team

import "github.com/KirkDiggler/gaffer/internal/models"

// SaveTeamInput contains parameters for saving a team
type SaveTeamInput struct {
	Team *models.Team
}

// GetTeamInput contains parameters for retrieving a team
type GetTeamInput struct {
	TeamID string
}

// GetTeamByParticipantInput contains parameters for retrieving a
// participant's team
type GetTeamByParticipantInput struct {
	ParticipantID string
}

// ListTeamsInput contains parameters for listing all teams
type ListTeamsInput struct{}

// ListTeamsOutput contains every team in the competition
type ListTeamsOutput struct {
	Teams []*models.Team
}
