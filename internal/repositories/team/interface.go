package team

import (
	"context"

	"github.com/KirkDiggler/gaffer/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gaffer/internal/repositories/team Repository

// Repository defines the interface for team data persistence
type Repository interface {
	// SaveTeam persists a team
	SaveTeam(ctx context.Context, input *SaveTeamInput) error

	// GetTeam retrieves a team by ID
	GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error)

	// GetTeamByParticipant retrieves the team a participant owns
	GetTeamByParticipant(ctx context.Context, input *GetTeamByParticipantInput) (*models.Team, error)

	// ListTeams retrieves every team in the competition
	ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error)
}
