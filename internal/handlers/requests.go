package handlers

import (
	"strings"
	"time"

	"github.com/abrezinsky/discscore/internal/services"
)

// TeamCreateRequest represents a request to create a team
type TeamCreateRequest struct {
	Name string `json:"name"`
}

// PlayerCreateRequest represents a request to add a player to a roster
type PlayerCreateRequest = services.PlayerInput

// SeedingsUpdateRequest maps team IDs to seeding ranks. A rank of 0 clears the seed.
type SeedingsUpdateRequest struct {
	Seedings map[int]int `json:"seedings"`
}

// MatchCreateRequest represents a request to schedule a match. MatchDate
// accepts RFC 3339 or the datetime-local form value.
type MatchCreateRequest struct {
	Team1ID         int    `json:"team1_id"`
	Team2ID         int    `json:"team2_id"`
	MatchDate       string `json:"match_date"`
	Location        string `json:"location"`
	Stage           string `json:"match_stage"`
	DurationMinutes int    `json:"duration_minutes"`
	MaxScore        int    `json:"max_score"`
}

var matchDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04"}

// ToInput converts the request into a service input
func (req MatchCreateRequest) ToInput() (services.MatchInput, error) {
	in := services.MatchInput{
		Team1ID:         req.Team1ID,
		Team2ID:         req.Team2ID,
		Location:        req.Location,
		Stage:           req.Stage,
		DurationMinutes: req.DurationMinutes,
		MaxScore:        req.MaxScore,
	}
	raw := strings.TrimSpace(req.MatchDate)
	if raw == "" {
		return in, nil
	}
	for _, layout := range matchDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			in.MatchDate = t
			return in, nil
		}
	}
	return in, BadRequest("Invalid match_date: " + raw)
}

// MatchStatusRequest represents a manual status change
type MatchStatusRequest struct {
	Status string `json:"status"`
}

// DefenseRequest records a defensive play
type DefenseRequest struct {
	PlayerID int `json:"player_id"`
}

// PossessionRequest sets the team on offense
type PossessionRequest struct {
	OffenseTeamID int `json:"offense_team_id"`
}

// RatioRequest overrides the base gender ratio
type RatioRequest struct {
	Ratio string `json:"gender_ratio"`
}

// PasswordChangeRequest represents a request to change the admin password
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
