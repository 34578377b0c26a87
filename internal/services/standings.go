package services

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/abrezinsky/discscore/internal/logger"
	"github.com/abrezinsky/discscore/internal/models"
	"github.com/abrezinsky/discscore/internal/repository"
)

// StandingsServiceRepository defines the repository methods needed by StandingsService
type StandingsServiceRepository interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListMatches(ctx context.Context, status string) ([]models.Match, error)
	repository.SeedingRepository
	ListSpiritScores(ctx context.Context) ([]models.SpiritScore, error)
}

// StandingsService computes tournament tables from persisted results
type StandingsService struct {
	log  logger.Logger
	repo StandingsServiceRepository
}

// NewStandingsService creates a new StandingsService
func NewStandingsService(log logger.Logger, repo StandingsServiceRepository) *StandingsService {
	return &StandingsService{log: log, repo: repo}
}

// StandingRow is one team's record in the current standings
type StandingRow struct {
	Rank              int    `json:"rank"`
	TeamID            int    `json:"team_id"`
	TeamName          string `json:"team_name"`
	Wins              int    `json:"wins"`
	Losses            int    `json:"losses"`
	PointDiff         int    `json:"point_diff"`
	FinalPlacement    *int   `json:"final_placement"`
	PlacementPriority int    `json:"placement_priority"`
}

// SeedRow is one team's pre-tournament seed
type SeedRow struct {
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`
	Seed     int    `json:"seed"`
}

// SpiritRow is a team's averaged spirit ratings
type SpiritRow struct {
	TeamID     int                `json:"team_id"`
	TeamName   string             `json:"team_name"`
	MatchCount int                `json:"match_count"`
	Overall    float64            `json:"overall"`
	Scores     map[string]float64 `json:"scores"`
}

// Standings bundles the three tournament tables
type Standings struct {
	Current []StandingRow `json:"current"`
	Initial []SeedRow     `json:"initial"`
	Spirit  []SpiritRow   `json:"spirit"`
}

// placement maps a placement game to the finishing position and sort
// priority of its winner. The loser finishes one place lower with one
// less priority.
var placement = map[string]struct{ place, priority int }{
	models.StageFinals:     {1, 200},
	models.StageThirdPlace: {3, 150},
	models.StageFifthPlace: {5, 100},
}

// Current returns standings from completed matches
func (s *StandingsService) Current(ctx context.Context) ([]StandingRow, error) {
	teams, err := s.repo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.repo.ListMatches(ctx, models.StatusCompleted)
	if err != nil {
		return nil, err
	}
	return BuildCurrentStandings(teams, matches), nil
}

// Initial returns seeded teams by seed
func (s *StandingsService) Initial(ctx context.Context) ([]SeedRow, error) {
	seedings, err := s.repo.ListSeedings(ctx)
	if err != nil {
		return nil, err
	}
	return BuildInitialStandings(seedings), nil
}

// Spirit returns teams ranked by their average received spirit
func (s *StandingsService) Spirit(ctx context.Context) ([]SpiritRow, error) {
	teams, err := s.repo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	scores, err := s.repo.ListSpiritScores(ctx)
	if err != nil {
		return nil, err
	}
	return BuildSpiritStandings(teams, scores), nil
}

// All returns the three tables, loading their inputs concurrently
func (s *StandingsService) All(ctx context.Context) (*Standings, error) {
	var (
		teams    []models.Team
		matches  []models.Match
		seedings []models.TeamSeeding
		spirit   []models.SpiritScore
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		teams, err = s.repo.ListTeams(gCtx)
		return err
	})
	g.Go(func() (err error) {
		matches, err = s.repo.ListMatches(gCtx, models.StatusCompleted)
		return err
	})
	g.Go(func() (err error) {
		seedings, err = s.repo.ListSeedings(gCtx)
		return err
	})
	g.Go(func() (err error) {
		spirit, err = s.repo.ListSpiritScores(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("failed to load standings", "error", err)
		return nil, err
	}

	return &Standings{
		Current: BuildCurrentStandings(teams, matches),
		Initial: BuildInitialStandings(seedings),
		Spirit:  BuildSpiritStandings(teams, spirit),
	}, nil
}

// BuildCurrentStandings tallies wins, losses and point differential per team
// over completed matches. A draw is a loss for both sides. Teams are ordered
// by placement priority, then wins, then point differential; remaining ties
// keep the order of teams.
func BuildCurrentStandings(teams []models.Team, matches []models.Match) []StandingRow {
	rows := make([]StandingRow, len(teams))
	index := make(map[int]int, len(teams))
	for i, t := range teams {
		rows[i] = StandingRow{TeamID: t.ID, TeamName: t.Name}
		index[t.ID] = i
	}

	record := func(teamID, own, opp int, stage string) {
		i, ok := index[teamID]
		if !ok {
			return
		}
		row := &rows[i]
		won := own > opp
		if won {
			row.Wins++
		} else {
			row.Losses++
		}
		row.PointDiff += own - opp

		p, ok := placement[stage]
		if !ok {
			return
		}
		place, priority := p.place, p.priority
		if !won {
			place++
			priority--
		}
		if priority > row.PlacementPriority {
			row.PlacementPriority = priority
			row.FinalPlacement = &place
		}
	}

	for _, m := range matches {
		if m.Status != models.StatusCompleted {
			continue
		}
		stage := m.EffectiveStage()
		record(m.Team1ID, m.Team1Score, m.Team2Score, stage)
		record(m.Team2ID, m.Team2Score, m.Team1Score, stage)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.PlacementPriority != b.PlacementPriority {
			return a.PlacementPriority > b.PlacementPriority
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.PointDiff > b.PointDiff
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// BuildInitialStandings orders seeded teams by seed, ties by team ID
func BuildInitialStandings(seedings []models.TeamSeeding) []SeedRow {
	rows := make([]SeedRow, 0, len(seedings))
	for _, sd := range seedings {
		rows = append(rows, SeedRow{TeamID: sd.TeamID, TeamName: sd.TeamName, Seed: sd.SeedingRank})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Seed != rows[j].Seed {
			return rows[i].Seed < rows[j].Seed
		}
		return rows[i].TeamID < rows[j].TeamID
	})
	return rows
}

// BuildSpiritStandings averages each rating category per receiving team,
// rounded to two decimals, with the overall score the rounded mean of the
// five averages. Teams that received no ratings are left out.
func BuildSpiritStandings(teams []models.Team, scores []models.SpiritScore) []SpiritRow {
	received := make(map[int][]models.SpiritScore)
	for _, sc := range scores {
		received[sc.ReceivingTeamID] = append(received[sc.ReceivingTeamID], sc)
	}

	rows := make([]SpiritRow, 0, len(received))
	for _, t := range teams {
		list := received[t.ID]
		if len(list) == 0 {
			continue
		}

		var sums [5]int
		for _, sc := range list {
			for i, r := range sc.Ratings() {
				sums[i] += r
			}
		}

		row := SpiritRow{
			TeamID:     t.ID,
			TeamName:   t.Name,
			MatchCount: len(list),
			Scores:     make(map[string]float64, len(sums)),
		}
		var total float64
		for i, sum := range sums {
			avg := round2(float64(sum) / float64(len(list)))
			row.Scores[models.SpiritCategories[i]] = avg
			total += avg
		}
		row.Overall = round2(total / float64(len(sums)))
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Overall > rows[j].Overall
	})
	return rows
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
