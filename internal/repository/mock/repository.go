package mock

import (
	"context"

	"github.com/abrezinsky/discscore/internal/models"
	"github.com/abrezinsky/discscore/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
// This provides a flexible way to test error paths without complex database manipulation.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.RecordScoreError = errors.New("database error")
//	svc := services.NewMatchService(log, mockRepo)
//	_, err := svc.RecordScore(ctx, matchID, services.ScoreInput{PlayerID: playerID})
//	// err will now contain the injected error
type Repository struct {
	repository.FullRepository

	// ===== Team Errors =====
	ListTeamsError           error
	GetTeamError             error
	GetTeamByNameError       error
	CreateTeamError          error
	CountMatchesForTeamError error
	DeleteTeamError          error

	// ===== Player Errors =====
	ListPlayersError  error
	GetPlayerError    error
	CreatePlayerError error
	DeletePlayerError error

	// ===== Match Errors =====
	ListMatchesError       error
	GetMatchError          error
	CreateMatchError       error
	UpdateMatchStateError  error
	UpdateMatchStatusError error
	DeleteMatchError       error

	// ===== Score Errors =====
	ListScoresError   error
	GetScoreError     error
	RecordScoreError  error
	DeleteScoreError  error
	PlayerTotalsError error

	// ===== Seeding Errors =====
	ListSeedingsError error
	SaveSeedingsError error

	// ===== Spirit Errors =====
	ListSpiritScoresError        error
	ListSpiritScoresForTeamError error
	CreateSpiritScoreError       error

	// ===== Admin Errors =====
	CountAdminsError         error
	GetAdminByUsernameError  error
	CreateAdminError         error
	UpdateAdminPasswordError error

	// ===== Import & Stats Errors =====
	ImportRosterError error
	GetStatsError     error
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{
		FullRepository: real,
	}
}

// ===== Team Methods =====

func (m *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	if m.ListTeamsError != nil {
		return nil, m.ListTeamsError
	}
	return m.FullRepository.ListTeams(ctx)
}

func (m *Repository) GetTeam(ctx context.Context, id int) (*models.Team, error) {
	if m.GetTeamError != nil {
		return nil, m.GetTeamError
	}
	return m.FullRepository.GetTeam(ctx, id)
}

func (m *Repository) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	if m.GetTeamByNameError != nil {
		return nil, m.GetTeamByNameError
	}
	return m.FullRepository.GetTeamByName(ctx, name)
}

func (m *Repository) CreateTeam(ctx context.Context, name string) (int64, error) {
	if m.CreateTeamError != nil {
		return 0, m.CreateTeamError
	}
	return m.FullRepository.CreateTeam(ctx, name)
}

func (m *Repository) CountMatchesForTeam(ctx context.Context, teamID int) (int, error) {
	if m.CountMatchesForTeamError != nil {
		return 0, m.CountMatchesForTeamError
	}
	return m.FullRepository.CountMatchesForTeam(ctx, teamID)
}

func (m *Repository) DeleteTeam(ctx context.Context, id int) error {
	if m.DeleteTeamError != nil {
		return m.DeleteTeamError
	}
	return m.FullRepository.DeleteTeam(ctx, id)
}

// ===== Player Methods =====

func (m *Repository) ListPlayers(ctx context.Context, teamID *int) ([]models.Player, error) {
	if m.ListPlayersError != nil {
		return nil, m.ListPlayersError
	}
	return m.FullRepository.ListPlayers(ctx, teamID)
}

func (m *Repository) GetPlayer(ctx context.Context, id int) (*models.Player, error) {
	if m.GetPlayerError != nil {
		return nil, m.GetPlayerError
	}
	return m.FullRepository.GetPlayer(ctx, id)
}

func (m *Repository) CreatePlayer(ctx context.Context, p models.Player) (int64, error) {
	if m.CreatePlayerError != nil {
		return 0, m.CreatePlayerError
	}
	return m.FullRepository.CreatePlayer(ctx, p)
}

func (m *Repository) DeletePlayer(ctx context.Context, id int) error {
	if m.DeletePlayerError != nil {
		return m.DeletePlayerError
	}
	return m.FullRepository.DeletePlayer(ctx, id)
}

// ===== Match Methods =====

func (m *Repository) ListMatches(ctx context.Context, status string) ([]models.Match, error) {
	if m.ListMatchesError != nil {
		return nil, m.ListMatchesError
	}
	return m.FullRepository.ListMatches(ctx, status)
}

func (m *Repository) GetMatch(ctx context.Context, id int) (*models.Match, error) {
	if m.GetMatchError != nil {
		return nil, m.GetMatchError
	}
	return m.FullRepository.GetMatch(ctx, id)
}

func (m *Repository) CreateMatch(ctx context.Context, match models.Match) (int64, error) {
	if m.CreateMatchError != nil {
		return 0, m.CreateMatchError
	}
	return m.FullRepository.CreateMatch(ctx, match)
}

func (m *Repository) UpdateMatchState(ctx context.Context, match *models.Match) error {
	if m.UpdateMatchStateError != nil {
		return m.UpdateMatchStateError
	}
	return m.FullRepository.UpdateMatchState(ctx, match)
}

func (m *Repository) UpdateMatchStatus(ctx context.Context, id int, status string) error {
	if m.UpdateMatchStatusError != nil {
		return m.UpdateMatchStatusError
	}
	return m.FullRepository.UpdateMatchStatus(ctx, id, status)
}

func (m *Repository) DeleteMatch(ctx context.Context, id int) error {
	if m.DeleteMatchError != nil {
		return m.DeleteMatchError
	}
	return m.FullRepository.DeleteMatch(ctx, id)
}

// ===== Score Methods =====

func (m *Repository) ListScores(ctx context.Context, matchID int) ([]models.Score, error) {
	if m.ListScoresError != nil {
		return nil, m.ListScoresError
	}
	return m.FullRepository.ListScores(ctx, matchID)
}

func (m *Repository) GetScore(ctx context.Context, id int) (*models.Score, error) {
	if m.GetScoreError != nil {
		return nil, m.GetScoreError
	}
	return m.FullRepository.GetScore(ctx, id)
}

func (m *Repository) RecordScore(ctx context.Context, s *models.Score, match *models.Match) (int64, error) {
	if m.RecordScoreError != nil {
		return 0, m.RecordScoreError
	}
	return m.FullRepository.RecordScore(ctx, s, match)
}

func (m *Repository) DeleteScore(ctx context.Context, scoreID int, match *models.Match) error {
	if m.DeleteScoreError != nil {
		return m.DeleteScoreError
	}
	return m.FullRepository.DeleteScore(ctx, scoreID, match)
}

func (m *Repository) PlayerTotals(ctx context.Context) ([]models.PlayerTotals, error) {
	if m.PlayerTotalsError != nil {
		return nil, m.PlayerTotalsError
	}
	return m.FullRepository.PlayerTotals(ctx)
}

// ===== Seeding Methods =====

func (m *Repository) ListSeedings(ctx context.Context) ([]models.TeamSeeding, error) {
	if m.ListSeedingsError != nil {
		return nil, m.ListSeedingsError
	}
	return m.FullRepository.ListSeedings(ctx)
}

func (m *Repository) SaveSeedings(ctx context.Context, ranks map[int]int) error {
	if m.SaveSeedingsError != nil {
		return m.SaveSeedingsError
	}
	return m.FullRepository.SaveSeedings(ctx, ranks)
}

// ===== Spirit Methods =====

func (m *Repository) ListSpiritScores(ctx context.Context) ([]models.SpiritScore, error) {
	if m.ListSpiritScoresError != nil {
		return nil, m.ListSpiritScoresError
	}
	return m.FullRepository.ListSpiritScores(ctx)
}

func (m *Repository) ListSpiritScoresForTeam(ctx context.Context, teamID int) ([]models.SpiritScore, error) {
	if m.ListSpiritScoresForTeamError != nil {
		return nil, m.ListSpiritScoresForTeamError
	}
	return m.FullRepository.ListSpiritScoresForTeam(ctx, teamID)
}

func (m *Repository) CreateSpiritScore(ctx context.Context, s models.SpiritScore) (int64, error) {
	if m.CreateSpiritScoreError != nil {
		return 0, m.CreateSpiritScoreError
	}
	return m.FullRepository.CreateSpiritScore(ctx, s)
}

// ===== Admin Methods =====

func (m *Repository) CountAdmins(ctx context.Context) (int, error) {
	if m.CountAdminsError != nil {
		return 0, m.CountAdminsError
	}
	return m.FullRepository.CountAdmins(ctx)
}

func (m *Repository) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	if m.GetAdminByUsernameError != nil {
		return nil, m.GetAdminByUsernameError
	}
	return m.FullRepository.GetAdminByUsername(ctx, username)
}

func (m *Repository) CreateAdmin(ctx context.Context, username, passwordHash string) (int64, error) {
	if m.CreateAdminError != nil {
		return 0, m.CreateAdminError
	}
	return m.FullRepository.CreateAdmin(ctx, username, passwordHash)
}

func (m *Repository) UpdateAdminPassword(ctx context.Context, id int, passwordHash string) error {
	if m.UpdateAdminPasswordError != nil {
		return m.UpdateAdminPasswordError
	}
	return m.FullRepository.UpdateAdminPassword(ctx, id, passwordHash)
}

// ===== Import & Stats Methods =====

func (m *Repository) ImportRoster(ctx context.Context, teamNames []string, players []repository.RosterPlayer) (int, int, error) {
	if m.ImportRosterError != nil {
		return 0, 0, m.ImportRosterError
	}
	return m.FullRepository.ImportRoster(ctx, teamNames, players)
}

func (m *Repository) GetStats(ctx context.Context) (*repository.Stats, error) {
	if m.GetStatsError != nil {
		return nil, m.GetStatsError
	}
	return m.FullRepository.GetStats(ctx)
}
