package services

import (
	"context"
	"strings"

	"github.com/abrezinsky/discscore/internal/errors"
	"github.com/abrezinsky/discscore/internal/logger"
	"github.com/abrezinsky/discscore/internal/models"
	"github.com/abrezinsky/discscore/internal/repository"
)

// PlayerServiceRepository defines the repository methods needed by PlayerService
type PlayerServiceRepository interface {
	repository.PlayerRepository
	GetTeam(ctx context.Context, id int) (*models.Team, error)
}

// PlayerService handles roster business logic
type PlayerService struct {
	log  logger.Logger
	repo PlayerServiceRepository
}

// NewPlayerService creates a new PlayerService
func NewPlayerService(log logger.Logger, repo PlayerServiceRepository) *PlayerService {
	return &PlayerService{log: log, repo: repo}
}

// PlayerInput describes a player to add
type PlayerInput struct {
	Name         string `json:"name"`
	TeamID       int    `json:"team_id"`
	JerseyNumber string `json:"jersey_number"`
}

// ListPlayers returns players, optionally only those on teamID
func (s *PlayerService) ListPlayers(ctx context.Context, teamID *int) ([]models.Player, error) {
	return s.repo.ListPlayers(ctx, teamID)
}

// GetPlayer returns a player by ID
func (s *PlayerService) GetPlayer(ctx context.Context, id int) (*models.Player, error) {
	p, err := s.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, repoError(err, "player")
	}
	return p, nil
}

// CreatePlayer adds a player to an existing team
func (s *PlayerService) CreatePlayer(ctx context.Context, in PlayerInput) (int64, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, errors.InvalidInput("player name is required")
	}
	if in.TeamID == 0 {
		return 0, errors.InvalidInput("team is required")
	}
	if _, err := s.repo.GetTeam(ctx, in.TeamID); err != nil {
		return 0, repoError(err, "team")
	}

	id, err := s.repo.CreatePlayer(ctx, models.Player{
		Name:         name,
		TeamID:       in.TeamID,
		JerseyNumber: strings.TrimSpace(in.JerseyNumber),
	})
	if err != nil {
		return 0, repoError(err, "player")
	}
	s.log.Info("player created", "player_id", id, "team_id", in.TeamID, "name", name)
	return id, nil
}

// DeletePlayer removes a player and their events
func (s *PlayerService) DeletePlayer(ctx context.Context, id int) error {
	if err := s.repo.DeletePlayer(ctx, id); err != nil {
		return repoError(err, "player")
	}
	s.log.Info("player deleted", "player_id", id)
	return nil
}
