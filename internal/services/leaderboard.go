package services

import (
	"context"
	"sort"

	"github.com/abrezinsky/discscore/internal/logger"
	"github.com/abrezinsky/discscore/internal/models"
)

// HomeLeaderboardSize is how many players the home page preview shows
const HomeLeaderboardSize = 10

// LeaderboardServiceRepository defines the repository methods needed by LeaderboardService
type LeaderboardServiceRepository interface {
	ListPlayers(ctx context.Context, teamID *int) ([]models.Player, error)
	PlayerTotals(ctx context.Context) ([]models.PlayerTotals, error)
}

// LeaderboardService ranks players by points and assists
type LeaderboardService struct {
	log  logger.Logger
	repo LeaderboardServiceRepository
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(log logger.Logger, repo LeaderboardServiceRepository) *LeaderboardService {
	return &LeaderboardService{log: log, repo: repo}
}

// LeaderboardEntry is a player's position on one leaderboard
type LeaderboardEntry struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamID     int    `json:"team_id"`
	TeamName   string `json:"team_name"`
	Value      int    `json:"value"`
	GlobalRank int    `json:"global_rank"`
	TeamRank   int    `json:"team_rank"`
}

// Leaderboard holds the scoring and assist rankings
type Leaderboard struct {
	Scoring []LeaderboardEntry `json:"scoring"`
	Assists []LeaderboardEntry `json:"assists"`
}

// LeaderboardQuery narrows a leaderboard. Zero values mean no filter and no limit.
type LeaderboardQuery struct {
	TeamID int
	Limit  int
}

// Get returns the leaderboards across all matches
func (s *LeaderboardService) Get(ctx context.Context, q LeaderboardQuery) (*Leaderboard, error) {
	players, err := s.repo.ListPlayers(ctx, nil)
	if err != nil {
		return nil, err
	}
	totals, err := s.repo.PlayerTotals(ctx)
	if err != nil {
		return nil, err
	}
	return BuildLeaderboard(players, totals, q), nil
}

// BuildLeaderboard ranks every player twice, by total points scored and by
// assists. Global and team ranks are assigned before the team filter, so a
// filtered board still shows tournament-wide positions. Ties keep the order
// of players.
func BuildLeaderboard(players []models.Player, totals []models.PlayerTotals, q LeaderboardQuery) *Leaderboard {
	byPlayer := make(map[int]models.PlayerTotals, len(totals))
	for _, t := range totals {
		byPlayer[t.PlayerID] = t
	}

	scoring := make([]LeaderboardEntry, len(players))
	assists := make([]LeaderboardEntry, len(players))
	for i, p := range players {
		entry := LeaderboardEntry{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			TeamID:     p.TeamID,
			TeamName:   p.TeamName,
		}
		scoring[i], assists[i] = entry, entry
		scoring[i].Value = byPlayer[p.ID].Points
		assists[i].Value = byPlayer[p.ID].Assists
	}

	return &Leaderboard{
		Scoring: rankEntries(scoring, q),
		Assists: rankEntries(assists, q),
	}
}

func rankEntries(entries []LeaderboardEntry, q LeaderboardQuery) []LeaderboardEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	teamCounts := make(map[int]int)
	for i := range entries {
		entries[i].GlobalRank = i + 1
		teamCounts[entries[i].TeamID]++
		entries[i].TeamRank = teamCounts[entries[i].TeamID]
	}

	if q.TeamID != 0 {
		filtered := make([]LeaderboardEntry, 0)
		for _, e := range entries {
			if e.TeamID == q.TeamID {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	if q.Limit > 0 && len(entries) > q.Limit {
		entries = entries[:q.Limit]
	}
	return entries
}
