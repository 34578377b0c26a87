package services

import (
	"context"
	"io"

	"github.com/abrezinsky/discscore/internal/models"
)

// TeamServicer defines the interface for team operations
type TeamServicer interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeam(ctx context.Context, id int) (*models.Team, error)
	CreateTeam(ctx context.Context, name string) (int64, error)
	DeleteTeam(ctx context.Context, id int) error
	ListSeedings(ctx context.Context) ([]models.TeamSeeding, error)
	UpdateSeedings(ctx context.Context, ranks map[int]int) error
}

// PlayerServicer defines the interface for roster operations
type PlayerServicer interface {
	ListPlayers(ctx context.Context, teamID *int) ([]models.Player, error)
	GetPlayer(ctx context.Context, id int) (*models.Player, error)
	CreatePlayer(ctx context.Context, in PlayerInput) (int64, error)
	DeletePlayer(ctx context.Context, id int) error
}

// MatchServicer defines the interface for match management and live scoring
type MatchServicer interface {
	ListMatches(ctx context.Context) ([]models.Match, error)
	ListMatchesByStatus(ctx context.Context, status string) ([]models.Match, error)
	GetMatch(ctx context.Context, id int) (*models.Match, error)
	CreateMatch(ctx context.Context, in MatchInput) (int64, error)
	UpdateMatchStatus(ctx context.Context, id int, status string) error
	DeleteMatch(ctx context.Context, id int) error
	ListScores(ctx context.Context, matchID int) ([]models.Score, error)
	StartMatch(ctx context.Context, matchID int, in StartInput) (*ActionResult, error)
	RecordScore(ctx context.Context, matchID int, in ScoreInput) (*ActionResult, error)
	RecordDefense(ctx context.Context, matchID, playerID int) (*ActionResult, error)
	UndoScore(ctx context.Context, matchID, scoreID int) (*ActionResult, error)
	SetPossession(ctx context.Context, matchID, offenseTeamID int) (*ActionResult, error)
	SetRatio(ctx context.Context, matchID int, ratio string) (*ActionResult, error)
	EndMatch(ctx context.Context, matchID int) (*ActionResult, error)
	LiveScore(ctx context.Context, matchID int) (*LiveScore, error)
	CurrentRatio(ctx context.Context, matchID int) (*RatioInfo, error)
	LivePageQR(ctx context.Context, matchID int, baseURL string) ([]byte, error)
	SetBroadcaster(b Broadcaster)
}

// StandingsServicer defines the interface for tournament tables
type StandingsServicer interface {
	Current(ctx context.Context) ([]StandingRow, error)
	Initial(ctx context.Context) ([]SeedRow, error)
	Spirit(ctx context.Context) ([]SpiritRow, error)
	All(ctx context.Context) (*Standings, error)
}

// LeaderboardServicer defines the interface for player rankings
type LeaderboardServicer interface {
	Get(ctx context.Context, q LeaderboardQuery) (*Leaderboard, error)
}

// SpiritServicer defines the interface for spirit submissions
type SpiritServicer interface {
	Submit(ctx context.Context, in SpiritInput) (int64, error)
	ListForTeam(ctx context.Context, teamID int) ([]models.SpiritScore, error)
	List(ctx context.Context) ([]models.SpiritScore, error)
}

// ImportServicer defines the interface for bulk roster import
type ImportServicer interface {
	ImportWorkbook(ctx context.Context, src io.Reader) (*ImportResult, error)
	ImportCSV(ctx context.Context, src io.Reader) (*ImportResult, error)
	Template() ([]byte, error)
}

// AdminServicer defines the interface for admin accounts and the dashboard
type AdminServicer interface {
	EnsureDefaultAdmin(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, username, password string) (*models.Admin, error)
	ChangePassword(ctx context.Context, username, current, next string) error
	Dashboard(ctx context.Context) (*Dashboard, error)
}

// Ensure concrete types implement interfaces
var (
	_ TeamServicer        = (*TeamService)(nil)
	_ PlayerServicer      = (*PlayerService)(nil)
	_ MatchServicer       = (*MatchService)(nil)
	_ StandingsServicer   = (*StandingsService)(nil)
	_ LeaderboardServicer = (*LeaderboardService)(nil)
	_ SpiritServicer      = (*SpiritService)(nil)
	_ ImportServicer      = (*ImportService)(nil)
	_ AdminServicer       = (*AdminService)(nil)
)
