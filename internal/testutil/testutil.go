package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/abrezinsky/discscore/internal/models"
	"github.com/abrezinsky/discscore/internal/repository"
)

// NewTestRepository creates a new in-memory repository for testing.
// Each call creates a fresh database with all migrations applied.
func NewTestRepository(t *testing.T) *repository.Repository {
	t.Helper()

	repo, err := repository.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}

	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}

// CreateTeam inserts a team and returns its ID
func CreateTeam(t *testing.T, repo repository.TeamRepository, name string) int {
	t.Helper()

	id, err := repo.CreateTeam(context.Background(), name)
	if err != nil {
		t.Fatalf("failed to create team %q: %v", name, err)
	}
	return int(id)
}

// CreatePlayer inserts a player on teamID and returns its ID
func CreatePlayer(t *testing.T, repo repository.PlayerRepository, teamID int, name string) int {
	t.Helper()

	id, err := repo.CreatePlayer(context.Background(), models.Player{Name: name, TeamID: teamID})
	if err != nil {
		t.Fatalf("failed to create player %q: %v", name, err)
	}
	return int(id)
}

// CreateMatch inserts a scheduled pool match between two teams and returns its ID
func CreateMatch(t *testing.T, repo repository.MatchRepository, team1ID, team2ID int) int {
	t.Helper()
	return CreateMatchWith(t, repo, models.Match{Team1ID: team1ID, Team2ID: team2ID})
}

// CreateMatchWith inserts m, filling unset fields with defaults, and returns its ID
func CreateMatchWith(t *testing.T, repo repository.MatchRepository, m models.Match) int {
	t.Helper()

	if m.MatchDate.IsZero() {
		m.MatchDate = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	}
	if m.Status == "" {
		m.Status = models.StatusScheduled
	}
	if m.Stage == "" {
		m.Stage = models.StagePool
	}
	if m.DurationMinutes == 0 {
		m.DurationMinutes = models.DefaultDurationMinutes
	}
	if m.MaxScore == 0 {
		m.MaxScore = models.DefaultMaxScore
	}

	id, err := repo.CreateMatch(context.Background(), m)
	if err != nil {
		t.Fatalf("failed to create match: %v", err)
	}

	// Scores and live state are not part of the insert
	if m.Team1Score != 0 || m.Team2Score != 0 || m.Status != models.StatusScheduled {
		m.ID = int(id)
		if err := repo.UpdateMatchState(context.Background(), &m); err != nil {
			t.Fatalf("failed to set match state: %v", err)
		}
	}
	return int(id)
}
