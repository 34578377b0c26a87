package models

import "time"

// Match statuses
const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusCompleted = "completed"
)

// Match stages
const (
	StagePool       = "Pool Stage"
	StageCrossPool  = "Cross Pool"
	StageFifthPlace = "5th Place Game"
	StageThirdPlace = "3rd Place Game"
	StageFinals     = "Finals"
)

// Score action types
const (
	ActionScore   = "score"
	ActionDefense = "defense"
)

// Gender ratios. Both teams always play the same ratio.
const (
	RatioBoys  = "4:3_boys"
	RatioGirls = "4:3_girls"
)

// Match defaults
const (
	DefaultMaxScore        = 15
	DefaultDurationMinutes = 60
)

// Team represents a tournament team
type Team struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Player represents a rostered player. TeamName is joined in for display.
type Player struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	TeamID       int       `json:"team_id"`
	TeamName     string    `json:"team_name,omitempty"`
	JerseyNumber string    `json:"jersey_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Match represents a game between two teams and its live state
type Match struct {
	ID                int        `json:"id"`
	Team1ID           int        `json:"team1_id"`
	Team1Name         string     `json:"team1_name,omitempty"`
	Team2ID           int        `json:"team2_id"`
	Team2Name         string     `json:"team2_name,omitempty"`
	Team1Score        int        `json:"team1_score"`
	Team2Score        int        `json:"team2_score"`
	MatchDate         time.Time  `json:"match_date"`
	Location          string     `json:"location"`
	Status            string     `json:"status"`
	Stage             string     `json:"match_stage"`
	DurationMinutes   int        `json:"duration_minutes"`
	MaxScore          int        `json:"max_score"`
	StartTime         *time.Time `json:"start_time"`
	OffenseTeamID     *int       `json:"current_offense_team_id"`
	DefenseTeamID     *int       `json:"current_defense_team_id"`
	GenderRatio       string     `json:"gender_ratio,omitempty"`
	TotalPointsPlayed int        `json:"total_points_played"`
	CreatedAt         time.Time  `json:"created_at"`
}

// Ratio is the gender ratio each team fields on the current point
type Ratio struct {
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`
}

// IsParticipant reports whether teamID plays in the match
func (m *Match) IsParticipant(teamID int) bool {
	return teamID == m.Team1ID || teamID == m.Team2ID
}

// Opponent returns the other participant, or 0 when teamID does not play
func (m *Match) Opponent(teamID int) int {
	switch teamID {
	case m.Team1ID:
		return m.Team2ID
	case m.Team2ID:
		return m.Team1ID
	}
	return 0
}

// TeamName returns the display name of a participant
func (m *Match) TeamName(teamID int) string {
	switch teamID {
	case m.Team1ID:
		return m.Team1Name
	case m.Team2ID:
		return m.Team2Name
	}
	return ""
}

// EffectiveStage treats an empty or unknown stage as pool play
func (m *Match) EffectiveStage() string {
	if IsValidStage(m.Stage) {
		return m.Stage
	}
	return StagePool
}

// CurrentRatio derives the ratio for the next point from the base ratio and
// the points played so far. The ratio flips after point 1 and then after
// every two points. Returns nil when no base ratio is set.
func (m *Match) CurrentRatio() *Ratio {
	if m.GenderRatio == "" {
		return nil
	}
	switches := 0
	if m.TotalPointsPlayed > 0 {
		switches = (m.TotalPointsPlayed + 1) / 2
	}
	ratio := m.GenderRatio
	if switches%2 == 1 {
		ratio = OppositeRatio(m.GenderRatio)
	}
	return &Ratio{Team1: ratio, Team2: ratio}
}

// OppositeRatio returns the other 4:3 ratio
func OppositeRatio(ratio string) string {
	if ratio == RatioBoys {
		return RatioGirls
	}
	return RatioBoys
}

// IsValidRatio reports whether ratio is one of the two 4:3 ratios
func IsValidRatio(ratio string) bool {
	return ratio == RatioBoys || ratio == RatioGirls
}

// IsValidStatus reports whether status is a known match status
func IsValidStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusLive, StatusCompleted:
		return true
	}
	return false
}

// Stages lists the match stages in tournament order
var Stages = []string{StagePool, StageCrossPool, StageFifthPlace, StageThirdPlace, StageFinals}

// IsValidStage reports whether stage is a known match stage
func IsValidStage(stage string) bool {
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// Score is a single scoring or defensive event within a match
type Score struct {
	ID             int       `json:"id"`
	MatchID        int       `json:"match_id"`
	PlayerID       int       `json:"player_id"`
	PlayerName     string    `json:"player_name,omitempty"`
	TeamID         int       `json:"team_id"`
	TeamName       string    `json:"team_name,omitempty"`
	ActionType     string    `json:"action_type"`
	Points         int       `json:"points"`
	AssistPlayerID *int      `json:"assist_player_id,omitempty"`
	AssistName     string    `json:"assist_by,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// TeamSeeding is the pre-tournament rank of a team
type TeamSeeding struct {
	TeamID      int       `json:"team_id"`
	TeamName    string    `json:"team_name,omitempty"`
	SeedingRank int       `json:"seeding_rank"`
	CreatedAt   time.Time `json:"created_at"`
}

// SpiritScore is one team's sportsmanship rating of its opponent in a match
type SpiritScore struct {
	ID               int       `json:"id"`
	MatchID          int       `json:"match_id"`
	GivingTeamID     int       `json:"giving_team_id"`
	ReceivingTeamID  int       `json:"receiving_team_id"`
	Day              string    `json:"day,omitempty"`
	Stage            string    `json:"stage,omitempty"`
	RulesKnowledge   int       `json:"rules_knowledge"`
	FoulsContact     int       `json:"fouls_contact"`
	FairMindedness   int       `json:"fair_mindedness"`
	PositiveAttitude int       `json:"positive_attitude"`
	Communication    int       `json:"communication"`
	MVPNames         string    `json:"mvp_names,omitempty"`
	MSPNames         string    `json:"msp_names,omitempty"`
	Feedback         string    `json:"feedback,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Ratings returns the five category ratings in display order
func (s *SpiritScore) Ratings() [5]int {
	return [5]int{s.RulesKnowledge, s.FoulsContact, s.FairMindedness, s.PositiveAttitude, s.Communication}
}

// SpiritCategories names the rating categories in the order returned by Ratings
var SpiritCategories = [5]string{"rules_knowledge", "fouls_contact", "fair_mindedness", "positive_attitude", "communication"}

// Admin is an account allowed to manage the tournament
type Admin struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PlayerTotals holds the raw leaderboard aggregates for one player
type PlayerTotals struct {
	PlayerID int
	Points   int
	Assists  int
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
