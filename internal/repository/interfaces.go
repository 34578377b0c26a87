package repository

import (
	"context"

	"github.com/abrezinsky/discscore/internal/models"
)

// TeamRepository defines team data operations
type TeamRepository interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeam(ctx context.Context, id int) (*models.Team, error)
	GetTeamByName(ctx context.Context, name string) (*models.Team, error)
	CreateTeam(ctx context.Context, name string) (int64, error)
	CountMatchesForTeam(ctx context.Context, teamID int) (int, error)
	DeleteTeam(ctx context.Context, id int) error
}

// PlayerRepository defines player data operations
type PlayerRepository interface {
	ListPlayers(ctx context.Context, teamID *int) ([]models.Player, error)
	GetPlayer(ctx context.Context, id int) (*models.Player, error)
	CreatePlayer(ctx context.Context, p models.Player) (int64, error)
	DeletePlayer(ctx context.Context, id int) error
}

// MatchRepository defines match data operations
type MatchRepository interface {
	ListMatches(ctx context.Context, status string) ([]models.Match, error)
	GetMatch(ctx context.Context, id int) (*models.Match, error)
	CreateMatch(ctx context.Context, m models.Match) (int64, error)
	UpdateMatchState(ctx context.Context, m *models.Match) error
	UpdateMatchStatus(ctx context.Context, id int, status string) error
	DeleteMatch(ctx context.Context, id int) error
}

// ScoreRepository defines scoring event operations
type ScoreRepository interface {
	ListScores(ctx context.Context, matchID int) ([]models.Score, error)
	GetScore(ctx context.Context, id int) (*models.Score, error)
	RecordScore(ctx context.Context, s *models.Score, m *models.Match) (int64, error)
	DeleteScore(ctx context.Context, scoreID int, m *models.Match) error
	PlayerTotals(ctx context.Context) ([]models.PlayerTotals, error)
}

// SeedingRepository defines seeding operations
type SeedingRepository interface {
	ListSeedings(ctx context.Context) ([]models.TeamSeeding, error)
	SaveSeedings(ctx context.Context, ranks map[int]int) error
}

// SpiritRepository defines spirit score operations
type SpiritRepository interface {
	ListSpiritScores(ctx context.Context) ([]models.SpiritScore, error)
	ListSpiritScoresForTeam(ctx context.Context, teamID int) ([]models.SpiritScore, error)
	CreateSpiritScore(ctx context.Context, s models.SpiritScore) (int64, error)
}

// AdminRepository defines admin account operations
type AdminRepository interface {
	CountAdmins(ctx context.Context) (int, error)
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	CreateAdmin(ctx context.Context, username, passwordHash string) (int64, error)
	UpdateAdminPassword(ctx context.Context, id int, passwordHash string) error
}

// ImportRepository defines bulk roster import
type ImportRepository interface {
	ImportRoster(ctx context.Context, teamNames []string, players []RosterPlayer) (int, int, error)
}

// StatsRepository defines dashboard counters
type StatsRepository interface {
	GetStats(ctx context.Context) (*Stats, error)
}

// FullRepository combines all repository interfaces
// Use this when a service needs access to multiple domains
type FullRepository interface {
	TeamRepository
	PlayerRepository
	MatchRepository
	ScoreRepository
	SeedingRepository
	SpiritRepository
	AdminRepository
	ImportRepository
	StatsRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
