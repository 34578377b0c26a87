package services

import (
	"context"
	"strings"

	"github.com/abrezinsky/discscore/internal/errors"
	"github.com/abrezinsky/discscore/internal/logger"
	"github.com/abrezinsky/discscore/internal/models"
	"github.com/abrezinsky/discscore/internal/repository"
)

// Rating used when a category is left blank on the form
const defaultSpiritRating = 3

// SpiritServiceRepository defines the repository methods needed by SpiritService
type SpiritServiceRepository interface {
	repository.SpiritRepository
	GetMatch(ctx context.Context, id int) (*models.Match, error)
}

// SpiritService handles spirit of the game submissions
type SpiritService struct {
	log  logger.Logger
	repo SpiritServiceRepository
}

// NewSpiritService creates a new SpiritService
func NewSpiritService(log logger.Logger, repo SpiritServiceRepository) *SpiritService {
	return &SpiritService{log: log, repo: repo}
}

// SpiritInput is a spirit form submission
type SpiritInput struct {
	MatchID          int    `json:"match_id"`
	GivingTeamID     int    `json:"giving_team_id"`
	ReceivingTeamID  int    `json:"receiving_team_id"`
	Day              string `json:"day"`
	Stage            string `json:"stage"`
	RulesKnowledge   int    `json:"rules_knowledge"`
	FoulsContact     int    `json:"fouls_contact"`
	FairMindedness   int    `json:"fair_mindedness"`
	PositiveAttitude int    `json:"positive_attitude"`
	Communication    int    `json:"communication"`
	MVPNames         string `json:"mvp_names"`
	MSPNames         string `json:"msp_names"`
	Feedback         string `json:"feedback"`
}

// Submit records one team's rating of its opponent. Each team may rate
// each opponent once per match.
func (s *SpiritService) Submit(ctx context.Context, in SpiritInput) (int64, error) {
	if in.MatchID == 0 || in.GivingTeamID == 0 || in.ReceivingTeamID == 0 {
		return 0, errors.InvalidInput("match, giving team and receiving team are required")
	}
	if in.GivingTeamID == in.ReceivingTeamID {
		return 0, errors.Validation("a team cannot rate itself")
	}

	m, err := s.repo.GetMatch(ctx, in.MatchID)
	if err != nil {
		return 0, repoError(err, "match")
	}
	if !m.IsParticipant(in.GivingTeamID) || !m.IsParticipant(in.ReceivingTeamID) {
		return 0, ErrNotParticipant
	}

	score := models.SpiritScore{
		MatchID:          in.MatchID,
		GivingTeamID:     in.GivingTeamID,
		ReceivingTeamID:  in.ReceivingTeamID,
		Day:              strings.TrimSpace(in.Day),
		Stage:            strings.TrimSpace(in.Stage),
		RulesKnowledge:   in.RulesKnowledge,
		FoulsContact:     in.FoulsContact,
		FairMindedness:   in.FairMindedness,
		PositiveAttitude: in.PositiveAttitude,
		Communication:    in.Communication,
		MVPNames:         strings.TrimSpace(in.MVPNames),
		MSPNames:         strings.TrimSpace(in.MSPNames),
		Feedback:         strings.TrimSpace(in.Feedback),
	}
	if score.Stage == "" {
		score.Stage = m.EffectiveStage()
	}

	ratings := []*int{&score.RulesKnowledge, &score.FoulsContact, &score.FairMindedness, &score.PositiveAttitude, &score.Communication}
	for i, r := range ratings {
		if *r == 0 {
			*r = defaultSpiritRating
		}
		if *r < 1 || *r > 5 {
			return 0, errors.Validationf("%s must be between 1 and 5", models.SpiritCategories[i])
		}
	}

	id, err := s.repo.CreateSpiritScore(ctx, score)
	if err != nil {
		if errors.Is(repoError(err, "spirit score"), errors.ErrConflict) {
			return 0, errors.Conflict("this team has already rated its opponent for this match")
		}
		return 0, repoError(err, "spirit score")
	}
	s.log.Info("spirit score submitted", "match_id", in.MatchID, "giving_team_id", in.GivingTeamID, "receiving_team_id", in.ReceivingTeamID)
	return id, nil
}

// ListForTeam returns the ratings a team has received
func (s *SpiritService) ListForTeam(ctx context.Context, teamID int) ([]models.SpiritScore, error) {
	return s.repo.ListSpiritScoresForTeam(ctx, teamID)
}

// List returns every submission
func (s *SpiritService) List(ctx context.Context) ([]models.SpiritScore, error) {
	return s.repo.ListSpiritScores(ctx)
}
