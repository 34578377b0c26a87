package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/abrezinsky/discscore/internal/models"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New opens the SQLite database at dbPath and applies migrations
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// One connection serialises writes and keeps :memory: databases alive
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Repository{db: db}, nil
}

// DB returns the underlying database connection
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// withTx runs fn inside a transaction, rolling back on error
func (r *Repository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// ==================== Team Methods ====================

// ListTeams returns all teams in creation order
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM teams ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id int) (*models.Team, error) {
	var t models.Team
	err := r.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM teams WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTeamByName retrieves a team by name, ignoring case
func (r *Repository) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	var t models.Team
	err := r.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM teams WHERE name = ? COLLATE NOCASE`, name).
		Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTeam inserts a team. Returns ErrDuplicate if the name is taken.
func (r *Repository) CreateTeam(ctx context.Context, name string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `INSERT INTO teams (name) VALUES (?)`, name)
	if err != nil {
		return 0, mapInsertError(err)
	}
	return result.LastInsertId()
}

// CountMatchesForTeam returns how many matches the team plays in
func (r *Repository) CountMatchesForTeam(ctx context.Context, teamID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM matches WHERE team1_id = ? OR team2_id = ?`, teamID, teamID).Scan(&count)
	return count, err
}

// DeleteTeam removes a team with its players, their score events, and its seeding.
// Assists credited to the team's players are cleared on other events.
func (r *Repository) DeleteTeam(ctx context.Context, id int) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		steps := []string{
			`DELETE FROM scores WHERE player_id IN (SELECT id FROM players WHERE team_id = ?)`,
			`UPDATE scores SET assist_player_id = NULL WHERE assist_player_id IN (SELECT id FROM players WHERE team_id = ?)`,
			`DELETE FROM players WHERE team_id = ?`,
			`DELETE FROM team_seedings WHERE team_id = ?`,
		}
		for _, q := range steps {
			if _, err := tx.ExecContext(ctx, q, id); err != nil {
				return err
			}
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
		if err != nil {
			return err
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ==================== Player Methods ====================

const playerSelect = `
	SELECT p.id, p.name, p.team_id, t.name, p.jersey_number, p.created_at
	FROM players p
	JOIN teams t ON p.team_id = t.id`

func scanPlayer(row rowScanner) (models.Player, error) {
	var p models.Player
	var jersey sql.NullString
	err := row.Scan(&p.ID, &p.Name, &p.TeamID, &p.TeamName, &jersey, &p.CreatedAt)
	p.JerseyNumber = jersey.String
	return p, err
}

// ListPlayers returns players in creation order, optionally limited to one team
func (r *Repository) ListPlayers(ctx context.Context, teamID *int) ([]models.Player, error) {
	query := playerSelect
	var args []any
	if teamID != nil {
		query += ` WHERE p.team_id = ?`
		args = append(args, *teamID)
	}
	query += ` ORDER BY p.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id int) (*models.Player, error) {
	p, err := scanPlayer(r.db.QueryRowContext(ctx, playerSelect+` WHERE p.id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePlayer inserts a player
func (r *Repository) CreatePlayer(ctx context.Context, p models.Player) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO players (name, team_id, jersey_number) VALUES (?, ?, ?)`,
		p.Name, p.TeamID, nullString(p.JerseyNumber))
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// DeletePlayer removes a player and their score events, clearing assists they made
func (r *Repository) DeletePlayer(ctx context.Context, id int) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM scores WHERE player_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE scores SET assist_player_id = NULL WHERE assist_player_id = ?`, id); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
		if err != nil {
			return err
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ==================== Match Methods ====================

const matchSelect = `
	SELECT m.id, m.team1_id, t1.name, m.team2_id, t2.name, m.team1_score, m.team2_score,
	       m.match_date, m.location, m.status, m.match_stage, m.duration_minutes, m.max_score,
	       m.start_time, m.current_offense_team_id, m.current_defense_team_id, m.gender_ratio,
	       m.total_points_played, m.created_at
	FROM matches m
	JOIN teams t1 ON m.team1_id = t1.id
	JOIN teams t2 ON m.team2_id = t2.id`

func scanMatch(row rowScanner) (models.Match, error) {
	var m models.Match
	var startTime sql.NullTime
	var offense, defense sql.NullInt64
	var ratio sql.NullString
	err := row.Scan(&m.ID, &m.Team1ID, &m.Team1Name, &m.Team2ID, &m.Team2Name, &m.Team1Score, &m.Team2Score,
		&m.MatchDate, &m.Location, &m.Status, &m.Stage, &m.DurationMinutes, &m.MaxScore,
		&startTime, &offense, &defense, &ratio,
		&m.TotalPointsPlayed, &m.CreatedAt)
	if err != nil {
		return m, err
	}
	if startTime.Valid {
		t := startTime.Time
		m.StartTime = &t
	}
	m.OffenseTeamID = intPtr(offense)
	m.DefenseTeamID = intPtr(defense)
	m.GenderRatio = ratio.String
	return m, nil
}

// ListMatches returns matches newest first. An empty status returns all matches.
func (r *Repository) ListMatches(ctx context.Context, status string) ([]models.Match, error) {
	query := matchSelect
	var args []any
	if status != "" {
		query += ` WHERE m.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY m.match_date DESC, m.id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// GetMatch retrieves a match by ID
func (r *Repository) GetMatch(ctx context.Context, id int) (*models.Match, error) {
	m, err := scanMatch(r.db.QueryRowContext(ctx, matchSelect+` WHERE m.id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMatch inserts a scheduled match
func (r *Repository) CreateMatch(ctx context.Context, m models.Match) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO matches (team1_id, team2_id, match_date, location, status, match_stage, duration_minutes, max_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, m.Team1ID, m.Team2ID, m.MatchDate, m.Location, m.Status, m.Stage, m.DurationMinutes, m.MaxScore)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func updateMatchState(ctx context.Context, ex execer, m *models.Match) error {
	result, err := ex.ExecContext(ctx, `
		UPDATE matches SET team1_score = ?, team2_score = ?, status = ?, start_time = ?,
		       current_offense_team_id = ?, current_defense_team_id = ?, gender_ratio = ?,
		       total_points_played = ?
		WHERE id = ?
	`, m.Team1Score, m.Team2Score, m.Status, m.StartTime,
		m.OffenseTeamID, m.DefenseTeamID, nullString(m.GenderRatio),
		m.TotalPointsPlayed, m.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateMatchState persists the live state of a match: scores, status,
// start time, possession, ratio and points played
func (r *Repository) UpdateMatchState(ctx context.Context, m *models.Match) error {
	return updateMatchState(ctx, r.db, m)
}

// UpdateMatchStatus sets only the status column
func (r *Repository) UpdateMatchStatus(ctx context.Context, id int, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE matches SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMatch removes a match together with its score events and spirit scores
func (r *Repository) DeleteMatch(ctx context.Context, id int) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM scores WHERE match_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM spirit_scores WHERE match_id = ?`, id); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM matches WHERE id = ?`, id)
		if err != nil {
			return err
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ==================== Score Methods ====================

const scoreSelect = `
	SELECT s.id, s.match_id, s.player_id, p.name, p.team_id, t.name, s.action_type, s.points,
	       s.assist_player_id, a.name, s.timestamp
	FROM scores s
	JOIN players p ON s.player_id = p.id
	JOIN teams t ON p.team_id = t.id
	LEFT JOIN players a ON s.assist_player_id = a.id`

func scanScore(row rowScanner) (models.Score, error) {
	var s models.Score
	var assistID sql.NullInt64
	var assistName sql.NullString
	err := row.Scan(&s.ID, &s.MatchID, &s.PlayerID, &s.PlayerName, &s.TeamID, &s.TeamName,
		&s.ActionType, &s.Points, &assistID, &assistName, &s.Timestamp)
	s.AssistPlayerID = intPtr(assistID)
	s.AssistName = assistName.String
	return s, err
}

// ListScores returns the events of a match, newest first
func (r *Repository) ListScores(ctx context.Context, matchID int) ([]models.Score, error) {
	rows, err := r.db.QueryContext(ctx, scoreSelect+`
		WHERE s.match_id = ?
		ORDER BY s.timestamp DESC, s.id DESC`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []models.Score
	for rows.Next() {
		s, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

// GetScore retrieves a single event
func (r *Repository) GetScore(ctx context.Context, id int) (*models.Score, error) {
	s, err := scanScore(r.db.QueryRowContext(ctx, scoreSelect+` WHERE s.id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// RecordScore appends an event and saves the resulting match state atomically
func (r *Repository) RecordScore(ctx context.Context, s *models.Score, m *models.Match) (int64, error) {
	var id int64
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if s.Timestamp.IsZero() {
			s.Timestamp = time.Now().UTC()
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO scores (match_id, player_id, action_type, points, assist_player_id, timestamp)
			VALUES (?, ?, ?, ?, ?, ?)
		`, s.MatchID, s.PlayerID, s.ActionType, s.Points, s.AssistPlayerID, s.Timestamp)
		if err != nil {
			return err
		}
		if id, err = result.LastInsertId(); err != nil {
			return err
		}
		return updateMatchState(ctx, tx, m)
	})
	if err != nil {
		return 0, err
	}
	s.ID = int(id)
	return id, nil
}

// DeleteScore removes an event and saves the resulting match state atomically
func (r *Repository) DeleteScore(ctx context.Context, scoreID int, m *models.Match) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM scores WHERE id = ? AND match_id = ?`, scoreID, m.ID)
		if err != nil {
			return err
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		return updateMatchState(ctx, tx, m)
	})
}

// PlayerTotals returns scoring points and assist counts for every player,
// across all matches, in player creation order
func (r *Repository) PlayerTotals(ctx context.Context) ([]models.PlayerTotals, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id,
		       COALESCE((SELECT SUM(s.points) FROM scores s WHERE s.player_id = p.id AND s.action_type = 'score'), 0),
		       (SELECT COUNT(*) FROM scores s WHERE s.assist_player_id = p.id)
		FROM players p
		ORDER BY p.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.PlayerTotals
	for rows.Next() {
		var t models.PlayerTotals
		if err := rows.Scan(&t.PlayerID, &t.Points, &t.Assists); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// ==================== Seeding Methods ====================

// ListSeedings returns seeded teams by rank, ties broken by team ID
func (r *Repository) ListSeedings(ctx context.Context) ([]models.TeamSeeding, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.team_id, t.name, s.seeding_rank, s.created_at
		FROM team_seedings s
		JOIN teams t ON s.team_id = t.id
		ORDER BY s.seeding_rank, s.team_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seedings []models.TeamSeeding
	for rows.Next() {
		var s models.TeamSeeding
		if err := rows.Scan(&s.TeamID, &s.TeamName, &s.SeedingRank, &s.CreatedAt); err != nil {
			return nil, err
		}
		seedings = append(seedings, s)
	}
	return seedings, rows.Err()
}

// SaveSeedings applies rank changes in one transaction. A positive rank
// upserts the team's seeding, zero or less removes it.
func (r *Repository) SaveSeedings(ctx context.Context, ranks map[int]int) error {
	teamIDs := make([]int, 0, len(ranks))
	for id := range ranks {
		teamIDs = append(teamIDs, id)
	}
	sort.Ints(teamIDs)

	return r.withTx(ctx, func(tx *sql.Tx) error {
		for _, teamID := range teamIDs {
			rank := ranks[teamID]
			var err error
			if rank > 0 {
				_, err = tx.ExecContext(ctx, `
					INSERT INTO team_seedings (team_id, seeding_rank) VALUES (?, ?)
					ON CONFLICT(team_id) DO UPDATE SET seeding_rank = excluded.seeding_rank
				`, teamID, rank)
			} else {
				_, err = tx.ExecContext(ctx, `DELETE FROM team_seedings WHERE team_id = ?`, teamID)
			}
			if err != nil {
				return fmt.Errorf("seeding for team %d: %w", teamID, err)
			}
		}
		return nil
	})
}

// ==================== Spirit Methods ====================

const spiritSelect = `
	SELECT id, match_id, giving_team_id, receiving_team_id, day, stage,
	       rules_knowledge, fouls_contact, fair_mindedness, positive_attitude, communication,
	       mvp_names, msp_names, feedback, created_at
	FROM spirit_scores`

func scanSpirit(row rowScanner) (models.SpiritScore, error) {
	var s models.SpiritScore
	err := row.Scan(&s.ID, &s.MatchID, &s.GivingTeamID, &s.ReceivingTeamID, &s.Day, &s.Stage,
		&s.RulesKnowledge, &s.FoulsContact, &s.FairMindedness, &s.PositiveAttitude, &s.Communication,
		&s.MVPNames, &s.MSPNames, &s.Feedback, &s.CreatedAt)
	return s, err
}

func (r *Repository) querySpirit(ctx context.Context, query string, args ...any) ([]models.SpiritScore, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []models.SpiritScore
	for rows.Next() {
		s, err := scanSpirit(rows)
		if err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

// ListSpiritScores returns all spirit submissions in submission order
func (r *Repository) ListSpiritScores(ctx context.Context) ([]models.SpiritScore, error) {
	return r.querySpirit(ctx, spiritSelect+` ORDER BY id`)
}

// ListSpiritScoresForTeam returns the submissions a team has received
func (r *Repository) ListSpiritScoresForTeam(ctx context.Context, teamID int) ([]models.SpiritScore, error) {
	return r.querySpirit(ctx, spiritSelect+` WHERE receiving_team_id = ? ORDER BY id`, teamID)
}

// CreateSpiritScore inserts a submission. Returns ErrDuplicate if the giving
// team already rated the receiving team for this match.
func (r *Repository) CreateSpiritScore(ctx context.Context, s models.SpiritScore) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO spirit_scores (match_id, giving_team_id, receiving_team_id, day, stage,
			rules_knowledge, fouls_contact, fair_mindedness, positive_attitude, communication,
			mvp_names, msp_names, feedback)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.MatchID, s.GivingTeamID, s.ReceivingTeamID, s.Day, s.Stage,
		s.RulesKnowledge, s.FoulsContact, s.FairMindedness, s.PositiveAttitude, s.Communication,
		s.MVPNames, s.MSPNames, s.Feedback)
	if err != nil {
		return 0, mapInsertError(err)
	}
	return result.LastInsertId()
}

// ==================== Admin Methods ====================

// CountAdmins returns the number of admin accounts
func (r *Repository) CountAdmins(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count)
	return count, err
}

// GetAdminByUsername retrieves an admin account
func (r *Repository) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var a models.Admin
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM admins WHERE username = ?`, username).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAdmin inserts an admin account with an already hashed password
func (r *Repository) CreateAdmin(ctx context.Context, username, passwordHash string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (username, password_hash) VALUES (?, ?)`, username, passwordHash)
	if err != nil {
		return 0, mapInsertError(err)
	}
	return result.LastInsertId()
}

// UpdateAdminPassword replaces an admin's password hash
func (r *Repository) UpdateAdminPassword(ctx context.Context, id int, passwordHash string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE admins SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== Import & Stats ====================

// RosterPlayer is an imported player row whose team is referenced by name
type RosterPlayer struct {
	Name         string
	TeamName     string
	JerseyNumber string
}

// ImportRoster creates teams and players in a single transaction. Team names
// that already exist are skipped. Every player's team must exist or be part
// of teamNames, otherwise nothing is written.
func (r *Repository) ImportRoster(ctx context.Context, teamNames []string, players []RosterPlayer) (teamsAdded, playersAdded int, err error) {
	err = r.withTx(ctx, func(tx *sql.Tx) error {
		for _, name := range teamNames {
			if _, err := tx.ExecContext(ctx, `INSERT INTO teams (name) VALUES (?)`, name); err != nil {
				if isUniqueViolation(err) {
					continue
				}
				return err
			}
			teamsAdded++
		}

		teamIDs := make(map[string]int)
		for _, p := range players {
			teamID, ok := teamIDs[p.TeamName]
			if !ok {
				err := tx.QueryRowContext(ctx, `SELECT id FROM teams WHERE name = ? COLLATE NOCASE`, p.TeamName).Scan(&teamID)
				if err == sql.ErrNoRows {
					return fmt.Errorf("team %q: %w", p.TeamName, ErrNotFound)
				}
				if err != nil {
					return err
				}
				teamIDs[p.TeamName] = teamID
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO players (name, team_id, jersey_number) VALUES (?, ?, ?)`,
				p.Name, teamID, nullString(p.JerseyNumber)); err != nil {
				return err
			}
			playersAdded++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return teamsAdded, playersAdded, nil
}

// Stats holds dashboard counters
type Stats struct {
	Teams            int `json:"teams"`
	Players          int `json:"players"`
	Matches          int `json:"matches"`
	LiveMatches      int `json:"live_matches"`
	CompletedMatches int `json:"completed_matches"`
	ScoreEvents      int `json:"score_events"`
	SpiritScores     int `json:"spirit_scores"`
}

// GetStats returns dashboard counters
func (r *Repository) GetStats(ctx context.Context) (*Stats, error) {
	var s Stats
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM teams),
			(SELECT COUNT(*) FROM players),
			(SELECT COUNT(*) FROM matches),
			(SELECT COUNT(*) FROM matches WHERE status = 'live'),
			(SELECT COUNT(*) FROM matches WHERE status = 'completed'),
			(SELECT COUNT(*) FROM scores),
			(SELECT COUNT(*) FROM spirit_scores)
	`).Scan(&s.Teams, &s.Players, &s.Matches, &s.LiveMatches, &s.CompletedMatches, &s.ScoreEvents, &s.SpiritScores)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
