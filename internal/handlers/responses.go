package handlers

import (
	"github.com/abrezinsky/discscore/internal/models"
	"github.com/abrezinsky/discscore/internal/services"
)

// IDResponse is returned after creating a resource
type IDResponse struct {
	ID int64 `json:"id"`
}

// HomeResponse is the landing page payload
type HomeResponse struct {
	Matches []models.Match              `json:"matches"`
	Scoring []services.LeaderboardEntry `json:"scoring"`
	Assists []services.LeaderboardEntry `json:"assists"`
}

// SeedingsResponse lists the current seedings
type SeedingsResponse struct {
	Seedings []models.TeamSeeding `json:"seedings"`
}
