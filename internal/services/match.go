package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"

	"github.com/abrezinsky/discscore/internal/errors"
	"github.com/abrezinsky/discscore/internal/logger"
	"github.com/abrezinsky/discscore/internal/models"
	"github.com/abrezinsky/discscore/internal/repository"
)

// Accepted match lengths in minutes
var validDurations = map[int]bool{60: true, 75: true, 90: true}

// MatchServiceRepository defines the repository methods needed by MatchService
type MatchServiceRepository interface {
	repository.MatchRepository
	repository.ScoreRepository
	GetTeam(ctx context.Context, id int) (*models.Team, error)
	GetPlayer(ctx context.Context, id int) (*models.Player, error)
}

// Broadcaster pushes live match snapshots to connected viewers
type Broadcaster interface {
	BroadcastMatchUpdate(matchID int, payload any)
}

// MatchService handles match management and the live scoring engine
type MatchService struct {
	log         logger.Logger
	repo        MatchServiceRepository
	broadcaster Broadcaster
	now         func() time.Time
}

// NewMatchService creates a new MatchService
func NewMatchService(log logger.Logger, repo MatchServiceRepository) *MatchService {
	return &MatchService{log: log, repo: repo, now: time.Now}
}

// SetBroadcaster sets the broadcaster for sending live updates to viewers
func (s *MatchService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// MatchInput describes a match to schedule
type MatchInput struct {
	Team1ID         int       `json:"team1_id"`
	Team2ID         int       `json:"team2_id"`
	MatchDate       time.Time `json:"match_date"`
	Location        string    `json:"location"`
	Stage           string    `json:"match_stage"`
	DurationMinutes int       `json:"duration_minutes"`
	MaxScore        int       `json:"max_score"`
}

// StartInput selects who pulls first and the opening gender ratio
type StartInput struct {
	OffenseTeamID int    `json:"offense_team_id"`
	Ratio         string `json:"gender_ratio"`
}

// ScoreInput describes a goal. Points of zero means one point.
type ScoreInput struct {
	PlayerID       int  `json:"player_id"`
	Points         int  `json:"points"`
	AssistPlayerID *int `json:"assist_player_id"`
}

// ActionResult is the outcome of a scoring action
type ActionResult struct {
	Match  *models.Match `json:"match"`
	Notice string        `json:"notice,omitempty"`
}

// LiveScore is the public snapshot polled by live viewers
type LiveScore struct {
	MatchID       int         `json:"match_id"`
	Team1Score    int         `json:"team1_score"`
	Team2Score    int         `json:"team2_score"`
	Status        string      `json:"status"`
	OffenseTeamID *int        `json:"current_offense_team_id"`
	DefenseTeamID *int        `json:"current_defense_team_id"`
	TotalPoints   int         `json:"total_points"`
	Team1Ratio    *string     `json:"team1_ratio"`
	Team2Ratio    *string     `json:"team2_ratio"`
	Scores        []LiveEvent `json:"scores"`
}

// LiveEvent is one scoring or defensive event in a LiveScore
type LiveEvent struct {
	ID         int     `json:"id"`
	PlayerName string  `json:"player_name"`
	TeamName   string  `json:"team_name"`
	ActionType string  `json:"action_type"`
	Points     int     `json:"points"`
	Timestamp  string  `json:"timestamp"`
	AssistBy   *string `json:"assist_by"`
}

// RatioInfo reports the ratio for the next point
type RatioInfo struct {
	Ratio       *models.Ratio `json:"ratio"`
	TotalPoints int           `json:"total_points"`
}

// ==================== Match Management ====================

// ListMatches returns all matches, newest first
func (s *MatchService) ListMatches(ctx context.Context) ([]models.Match, error) {
	return s.repo.ListMatches(ctx, "")
}

// ListMatchesByStatus returns matches in the given status, newest first
func (s *MatchService) ListMatchesByStatus(ctx context.Context, status string) ([]models.Match, error) {
	if !models.IsValidStatus(status) {
		return nil, errors.Validationf("unknown match status %q", status)
	}
	return s.repo.ListMatches(ctx, status)
}

// GetMatch returns a match by ID
func (s *MatchService) GetMatch(ctx context.Context, id int) (*models.Match, error) {
	m, err := s.repo.GetMatch(ctx, id)
	if err != nil {
		return nil, repoError(err, "match")
	}
	return m, nil
}

// CreateMatch schedules a match between two existing teams
func (s *MatchService) CreateMatch(ctx context.Context, in MatchInput) (int64, error) {
	if in.Team1ID == 0 || in.Team2ID == 0 {
		return 0, errors.InvalidInput("both teams are required")
	}
	if in.Team1ID == in.Team2ID {
		return 0, errors.Validation("a team cannot play against itself")
	}
	if in.MatchDate.IsZero() {
		return 0, errors.InvalidInput("match date is required")
	}
	if in.Stage == "" {
		in.Stage = models.StagePool
	}
	if !models.IsValidStage(in.Stage) {
		return 0, errors.Validationf("unknown match stage %q", in.Stage)
	}
	if in.DurationMinutes == 0 {
		in.DurationMinutes = models.DefaultDurationMinutes
	}
	if !validDurations[in.DurationMinutes] {
		return 0, errors.Validation("duration must be 60, 75 or 90 minutes")
	}
	if in.MaxScore == 0 {
		in.MaxScore = models.DefaultMaxScore
	}
	if in.MaxScore < 0 {
		return 0, errors.Validation("max score must be positive")
	}

	for _, teamID := range []int{in.Team1ID, in.Team2ID} {
		if _, err := s.repo.GetTeam(ctx, teamID); err != nil {
			return 0, repoError(err, "team")
		}
	}

	id, err := s.repo.CreateMatch(ctx, models.Match{
		Team1ID:         in.Team1ID,
		Team2ID:         in.Team2ID,
		MatchDate:       in.MatchDate,
		Location:        in.Location,
		Status:          models.StatusScheduled,
		Stage:           in.Stage,
		DurationMinutes: in.DurationMinutes,
		MaxScore:        in.MaxScore,
	})
	if err != nil {
		return 0, repoError(err, "match")
	}
	s.log.Info("match created", "match_id", id, "team1_id", in.Team1ID, "team2_id", in.Team2ID, "stage", in.Stage)
	return id, nil
}

// UpdateMatchStatus overrides a match's status without touching its live state
func (s *MatchService) UpdateMatchStatus(ctx context.Context, id int, status string) error {
	if !models.IsValidStatus(status) {
		return errors.Validationf("unknown match status %q", status)
	}
	if err := s.repo.UpdateMatchStatus(ctx, id, status); err != nil {
		return repoError(err, "match")
	}
	s.log.Info("match status changed", "match_id", id, "status", status)

	if m, err := s.repo.GetMatch(ctx, id); err == nil {
		s.publish(ctx, m)
	}
	return nil
}

// DeleteMatch removes a match with its events and spirit scores
func (s *MatchService) DeleteMatch(ctx context.Context, id int) error {
	if err := s.repo.DeleteMatch(ctx, id); err != nil {
		return repoError(err, "match")
	}
	s.log.Info("match deleted", "match_id", id)
	return nil
}

// ListScores returns a match's events, newest first
func (s *MatchService) ListScores(ctx context.Context, matchID int) ([]models.Score, error) {
	if _, err := s.GetMatch(ctx, matchID); err != nil {
		return nil, err
	}
	return s.repo.ListScores(ctx, matchID)
}

// ==================== Scoring Engine ====================

// StartMatch moves a scheduled match to live with the chosen team on offense
func (s *MatchService) StartMatch(ctx context.Context, matchID int, in StartInput) (*ActionResult, error) {
	m, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if in.OffenseTeamID == 0 {
		return nil, ErrOffenseRequired
	}
	switch m.Status {
	case models.StatusCompleted:
		return nil, ErrMatchCompleted
	case models.StatusLive:
		return nil, ErrMatchNotScheduled
	}
	if !m.IsParticipant(in.OffenseTeamID) {
		return nil, ErrNotParticipant
	}
	if in.Ratio != "" && !models.IsValidRatio(in.Ratio) {
		return nil, ErrInvalidRatio
	}

	start := s.now().UTC()
	m.StartTime = &start
	m.Status = models.StatusLive
	setPossession(m, in.OffenseTeamID)
	m.GenderRatio = in.Ratio
	m.TotalPointsPlayed = 0

	if err := s.repo.UpdateMatchState(ctx, m); err != nil {
		return nil, repoError(err, "match")
	}
	s.log.Info("match started", "match_id", m.ID, "offense_team_id", in.OffenseTeamID, "ratio", in.Ratio)
	return s.result(ctx, m, "Match started!"), nil
}

// RecordScore credits a goal to a player's team, flips possession when the
// offense scored and completes the match once a team reaches max score
func (s *MatchService) RecordScore(ctx context.Context, matchID int, in ScoreInput) (*ActionResult, error) {
	m, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if in.PlayerID == 0 {
		return nil, ErrPlayerRequired
	}
	if m.Status != models.StatusLive {
		return nil, ErrMatchNotLive
	}
	if in.Points < 0 {
		return nil, ErrNegativePoints
	}
	points := in.Points
	if points == 0 {
		points = 1
	}

	player, err := s.participant(ctx, m, in.PlayerID)
	if err != nil {
		return nil, err
	}

	if in.AssistPlayerID != nil {
		if *in.AssistPlayerID == player.ID {
			return nil, errors.Validation("a player cannot assist their own score")
		}
		assist, err := s.repo.GetPlayer(ctx, *in.AssistPlayerID)
		if err != nil {
			return nil, repoError(err, "assist player")
		}
		if assist.TeamID != player.TeamID {
			return nil, errors.Validationf("%s is not a teammate of %s", assist.Name, player.Name)
		}
	}

	applyScore(m, player.TeamID, points)

	event := &models.Score{
		MatchID:        m.ID,
		PlayerID:       player.ID,
		ActionType:     models.ActionScore,
		Points:         points,
		AssistPlayerID: in.AssistPlayerID,
		Timestamp:      s.now().UTC(),
	}
	if _, err := s.repo.RecordScore(ctx, event, m); err != nil {
		return nil, repoError(err, "match")
	}

	s.log.Info("score recorded", "match_id", m.ID, "player_id", player.ID, "team_id", player.TeamID,
		"points", points, "team1_score", m.Team1Score, "team2_score", m.Team2Score)

	notice := "Score recorded"
	if m.Status == models.StatusCompleted {
		s.log.Info("match completed", "match_id", m.ID, "team1_score", m.Team1Score, "team2_score", m.Team2Score)
		notice = "Match completed!"
	}
	return s.result(ctx, m, notice), nil
}

// RecordDefense logs a defensive play. Scores and possession are unchanged.
func (s *MatchService) RecordDefense(ctx context.Context, matchID, playerID int) (*ActionResult, error) {
	m, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if playerID == 0 {
		return nil, ErrPlayerRequired
	}
	if m.Status != models.StatusLive {
		return nil, ErrMatchNotLive
	}
	player, err := s.participant(ctx, m, playerID)
	if err != nil {
		return nil, err
	}

	event := &models.Score{
		MatchID:    m.ID,
		PlayerID:   player.ID,
		ActionType: models.ActionDefense,
		Points:     0,
		Timestamp:  s.now().UTC(),
	}
	if _, err := s.repo.RecordScore(ctx, event, m); err != nil {
		return nil, repoError(err, "match")
	}
	s.log.Info("defense recorded", "match_id", m.ID, "player_id", player.ID)
	return s.result(ctx, m, "Defense recorded"), nil
}

// UndoScore deletes one event. Goals are subtracted from the scorer's team;
// possession, points played and status stay as they are.
func (s *MatchService) UndoScore(ctx context.Context, matchID, scoreID int) (*ActionResult, error) {
	m, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	event, err := s.repo.GetScore(ctx, scoreID)
	if err != nil {
		return nil, repoError(err, "score")
	}
	if event.MatchID != m.ID {
		return nil, errors.NotFound("score not found")
	}

	if event.ActionType == models.ActionScore {
		if event.TeamID == m.Team1ID {
			m.Team1Score -= event.Points
		} else {
			m.Team2Score -= event.Points
		}
	}

	if err := s.repo.DeleteScore(ctx, event.ID, m); err != nil {
		return nil, repoError(err, "score")
	}
	s.log.Info("event undone", "match_id", m.ID, "score_id", event.ID, "action", event.ActionType, "points", event.Points)
	return s.result(ctx, m, "Action undone"), nil
}

// SetPossession puts a team on offense
func (s *MatchService) SetPossession(ctx context.Context, matchID, offenseTeamID int) (*ActionResult, error) {
	m, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if offenseTeamID == 0 {
		return nil, ErrOffenseRequired
	}
	if m.Status != models.StatusLive {
		return nil, ErrMatchNotLive
	}
	if !m.IsParticipant(offenseTeamID) {
		return nil, ErrNotParticipant
	}

	setPossession(m, offenseTeamID)
	if err := s.repo.UpdateMatchState(ctx, m); err != nil {
		return nil, repoError(err, "match")
	}
	s.log.Info("possession set", "match_id", m.ID, "offense_team_id", offenseTeamID)
	return s.result(ctx, m, "Possession updated!"), nil
}

// SetRatio replaces the base gender ratio
func (s *MatchService) SetRatio(ctx context.Context, matchID int, ratio string) (*ActionResult, error) {
	m, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if ratio == "" {
		return nil, ErrRatioRequired
	}
	if m.Status != models.StatusLive {
		return nil, ErrMatchNotLive
	}
	if !models.IsValidRatio(ratio) {
		return nil, ErrInvalidRatio
	}

	m.GenderRatio = ratio
	if err := s.repo.UpdateMatchState(ctx, m); err != nil {
		return nil, repoError(err, "match")
	}
	s.log.Info("ratio set", "match_id", m.ID, "ratio", ratio)
	return s.result(ctx, m, "Ratio updated!"), nil
}

// EndMatch completes a scheduled or live match
func (s *MatchService) EndMatch(ctx context.Context, matchID int) (*ActionResult, error) {
	m, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.Status == models.StatusCompleted {
		return nil, ErrMatchCompleted
	}

	m.Status = models.StatusCompleted
	if err := s.repo.UpdateMatchState(ctx, m); err != nil {
		return nil, repoError(err, "match")
	}
	s.log.Info("match ended", "match_id", m.ID, "team1_score", m.Team1Score, "team2_score", m.Team2Score)
	return s.result(ctx, m, "Match ended!"), nil
}

// LiveScore returns the public snapshot of a match
func (s *MatchService) LiveScore(ctx context.Context, matchID int) (*LiveScore, error) {
	m, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	events, err := s.repo.ListScores(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return BuildLiveScore(m, events), nil
}

// CurrentRatio returns the ratio for the next point, nil when no base ratio is set
func (s *MatchService) CurrentRatio(ctx context.Context, matchID int) (*RatioInfo, error) {
	m, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return &RatioInfo{Ratio: m.CurrentRatio(), TotalPoints: m.TotalPointsPlayed}, nil
}

// LivePageQR returns a PNG QR code linking to the public page of a match
func (s *MatchService) LivePageQR(ctx context.Context, matchID int, baseURL string) ([]byte, error) {
	if baseURL == "" {
		return nil, errors.InvalidInput("base URL is required")
	}
	if _, err := s.GetMatch(ctx, matchID); err != nil {
		return nil, err
	}
	pageURL := fmt.Sprintf("%s/match/%d", strings.TrimSuffix(baseURL, "/"), matchID)
	png, err := qrcode.Encode(pageURL, qrcode.Medium, 256)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return png, nil
}

// BuildLiveScore assembles a snapshot from a match and its events, newest first
func BuildLiveScore(m *models.Match, events []models.Score) *LiveScore {
	live := &LiveScore{
		MatchID:       m.ID,
		Team1Score:    m.Team1Score,
		Team2Score:    m.Team2Score,
		Status:        m.Status,
		OffenseTeamID: m.OffenseTeamID,
		DefenseTeamID: m.DefenseTeamID,
		TotalPoints:   m.TotalPointsPlayed,
		Scores:        make([]LiveEvent, 0, len(events)),
	}
	if ratio := m.CurrentRatio(); ratio != nil {
		live.Team1Ratio = &ratio.Team1
		live.Team2Ratio = &ratio.Team2
	}
	for _, e := range events {
		ev := LiveEvent{
			ID:         e.ID,
			PlayerName: e.PlayerName,
			TeamName:   e.TeamName,
			ActionType: e.ActionType,
			Points:     e.Points,
			Timestamp:  e.Timestamp.Format("15:04:05"),
		}
		if e.AssistName != "" {
			name := e.AssistName
			ev.AssistBy = &name
		}
		live.Scores = append(live.Scores, ev)
	}
	return live
}

// participant loads a player and checks they play for one of the match teams
func (s *MatchService) participant(ctx context.Context, m *models.Match, playerID int) (*models.Player, error) {
	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, repoError(err, "player")
	}
	if !m.IsParticipant(player.TeamID) {
		return nil, errors.Validationf("%s does not play for either team in this match", player.Name)
	}
	return player, nil
}

// result packages an action outcome and pushes the new snapshot to viewers
func (s *MatchService) result(ctx context.Context, m *models.Match, notice string) *ActionResult {
	s.publish(ctx, m)
	return &ActionResult{Match: m, Notice: notice}
}

func (s *MatchService) publish(ctx context.Context, m *models.Match) {
	if s.broadcaster == nil {
		return
	}
	events, err := s.repo.ListScores(ctx, m.ID)
	if err != nil {
		s.log.Warn("failed to load events for broadcast", "match_id", m.ID, "error", err)
		return
	}
	s.broadcaster.BroadcastMatchUpdate(m.ID, BuildLiveScore(m, events))
}

// setPossession puts teamID on offense and its opponent on defense
func setPossession(m *models.Match, teamID int) {
	offense := teamID
	defense := m.Opponent(teamID)
	m.OffenseTeamID = &offense
	m.DefenseTeamID = &defense
}

// applyScore updates the in-memory match for a goal by teamID
func applyScore(m *models.Match, teamID, points int) {
	if teamID == m.Team1ID {
		m.Team1Score += points
	} else {
		m.Team2Score += points
	}

	// The scoring team pulls next
	if m.OffenseTeamID != nil && *m.OffenseTeamID == teamID {
		setPossession(m, m.Opponent(teamID))
	}

	m.TotalPointsPlayed++
	if m.Team1Score >= m.MaxScore || m.Team2Score >= m.MaxScore {
		m.Status = models.StatusCompleted
	}
}
