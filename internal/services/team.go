package services

import (
	"context"
	"strings"

	"github.com/abrezinsky/discscore/internal/errors"
	"github.com/abrezinsky/discscore/internal/logger"
	"github.com/abrezinsky/discscore/internal/models"
	"github.com/abrezinsky/discscore/internal/repository"
)

// TeamServiceRepository defines the repository methods needed by TeamService
type TeamServiceRepository interface {
	repository.TeamRepository
	repository.SeedingRepository
}

// TeamService handles team-related business logic
type TeamService struct {
	log  logger.Logger
	repo TeamServiceRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(log logger.Logger, repo TeamServiceRepository) *TeamService {
	return &TeamService{log: log, repo: repo}
}

// ListTeams returns all teams in creation order
func (s *TeamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	return s.repo.ListTeams(ctx)
}

// GetTeam returns a team by ID
func (s *TeamService) GetTeam(ctx context.Context, id int) (*models.Team, error) {
	t, err := s.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, repoError(err, "team")
	}
	return t, nil
}

// CreateTeam adds a team. Names are unique regardless of case.
func (s *TeamService) CreateTeam(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errors.InvalidInput("team name is required")
	}
	id, err := s.repo.CreateTeam(ctx, name)
	if err != nil {
		return 0, repoError(err, "team "+name)
	}
	s.log.Info("team created", "team_id", id, "name", name)
	return id, nil
}

// DeleteTeam removes a team with its roster and seeding. Teams that still
// have matches on the schedule cannot be deleted.
func (s *TeamService) DeleteTeam(ctx context.Context, id int) error {
	if _, err := s.GetTeam(ctx, id); err != nil {
		return err
	}
	count, err := s.repo.CountMatchesForTeam(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.Conflictf("team has %d matches; delete them first", count)
	}
	if err := s.repo.DeleteTeam(ctx, id); err != nil {
		return repoError(err, "team")
	}
	s.log.Info("team deleted", "team_id", id)
	return nil
}

// ListSeedings returns seeded teams by rank
func (s *TeamService) ListSeedings(ctx context.Context) ([]models.TeamSeeding, error) {
	return s.repo.ListSeedings(ctx)
}

// UpdateSeedings applies rank changes keyed by team ID. A positive rank sets
// the team's seed, zero clears it. Unknown teams abort the whole update.
func (s *TeamService) UpdateSeedings(ctx context.Context, ranks map[int]int) error {
	for teamID := range ranks {
		if _, err := s.GetTeam(ctx, teamID); err != nil {
			return err
		}
	}
	if err := s.repo.SaveSeedings(ctx, ranks); err != nil {
		return repoError(err, "seeding")
	}
	s.log.Info("seedings updated", "teams", len(ranks))
	return nil
}
