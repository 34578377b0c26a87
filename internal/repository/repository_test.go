package repository

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/abrezinsky/discscore/internal/models"
)

// newTestRepo creates a new in-memory repository for testing.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func mustTeam(t *testing.T, repo *Repository, name string) int {
	t.Helper()
	id, err := repo.CreateTeam(context.Background(), name)
	if err != nil {
		t.Fatalf("CreateTeam(%q) failed: %v", name, err)
	}
	return int(id)
}

func mustPlayer(t *testing.T, repo *Repository, teamID int, name string) int {
	t.Helper()
	id, err := repo.CreatePlayer(context.Background(), models.Player{Name: name, TeamID: teamID})
	if err != nil {
		t.Fatalf("CreatePlayer(%q) failed: %v", name, err)
	}
	return int(id)
}

func mustMatch(t *testing.T, repo *Repository, team1, team2 int, date time.Time) int {
	t.Helper()
	id, err := repo.CreateMatch(context.Background(), models.Match{
		Team1ID: team1, Team2ID: team2, MatchDate: date,
		Status: models.StatusScheduled, Stage: models.StagePool,
		DurationMinutes: 60, MaxScore: 15,
	})
	if err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}
	return int(id)
}

// ==================== Migration Tests ====================

func TestNew_AppliesAllMigrations(t *testing.T) {
	repo := newTestRepo(t)

	version, err := repo.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected schema version 2, got %d", version)
	}

	if err := repo.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestNew_ReopenIsNoChange(t *testing.T) {
	path := t.TempDir() + "/tourney.db"

	first, err := New(path)
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	mustTeam(t, first, "Huckers")
	first.Close()

	second, err := New(path)
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	defer second.Close()

	teams, err := second.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("ListTeams failed: %v", err)
	}
	if len(teams) != 1 || teams[0].Name != "Huckers" {
		t.Errorf("expected data to survive reopen, got %+v", teams)
	}
}

// ==================== Team Tests ====================

func TestCreateTeam_DuplicateIgnoresCase(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	mustTeam(t, repo, "Huckers")

	_, err := repo.CreateTeam(ctx, "HUCKERS")
	if !stderrors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestGetTeamByName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	id := mustTeam(t, repo, "Layout Legends")

	team, err := repo.GetTeamByName(ctx, "layout legends")
	if err != nil {
		t.Fatalf("GetTeamByName failed: %v", err)
	}
	if team.ID != id {
		t.Errorf("expected team %d, got %d", id, team.ID)
	}

	if _, err := repo.GetTeamByName(ctx, "nobody"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetTeam(ctx, 999); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTeam_Cascades(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	keep := mustTeam(t, repo, "Keepers")
	gone := mustTeam(t, repo, "Goners")
	other := mustTeam(t, repo, "Others")
	mustPlayer(t, repo, gone, "Alice")
	mustPlayer(t, repo, keep, "Bob")
	if err := repo.SaveSeedings(ctx, map[int]int{gone: 1, keep: 2, other: 3}); err != nil {
		t.Fatalf("SaveSeedings failed: %v", err)
	}

	if err := repo.DeleteTeam(ctx, gone); err != nil {
		t.Fatalf("DeleteTeam failed: %v", err)
	}

	if _, err := repo.GetTeam(ctx, gone); err != ErrNotFound {
		t.Errorf("expected team to be gone, got %v", err)
	}
	players, _ := repo.ListPlayers(ctx, nil)
	if len(players) != 1 || players[0].Name != "Bob" {
		t.Errorf("expected only Bob to remain, got %+v", players)
	}
	seedings, _ := repo.ListSeedings(ctx)
	if len(seedings) != 2 {
		t.Errorf("expected 2 seedings to remain, got %d", len(seedings))
	}

	if err := repo.DeleteTeam(ctx, gone); err != ErrNotFound {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCountMatchesForTeam(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	c := mustTeam(t, repo, "C")
	mustMatch(t, repo, a, b, time.Now())
	mustMatch(t, repo, c, a, time.Now())

	count, err := repo.CountMatchesForTeam(ctx, a)
	if err != nil {
		t.Fatalf("CountMatchesForTeam failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 matches, got %d", count)
	}
}

// ==================== Player Tests ====================

func TestListPlayers_FilterAndJoin(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")

	if _, err := repo.CreatePlayer(ctx, models.Player{Name: "Ann", TeamID: a, JerseyNumber: "7"}); err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	mustPlayer(t, repo, b, "Ben")

	players, err := repo.ListPlayers(ctx, &a)
	if err != nil {
		t.Fatalf("ListPlayers failed: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(players))
	}
	if players[0].TeamName != "A" || players[0].JerseyNumber != "7" {
		t.Errorf("unexpected player: %+v", players[0])
	}

	all, _ := repo.ListPlayers(ctx, nil)
	if len(all) != 2 {
		t.Errorf("expected 2 players, got %d", len(all))
	}
}

func TestCreatePlayer_UnknownTeam(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.CreatePlayer(context.Background(), models.Player{Name: "Lost", TeamID: 42}); err == nil {
		t.Error("expected foreign key error for unknown team")
	}
}

func TestDeletePlayer_ClearsAssists(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	scorer := mustPlayer(t, repo, a, "Scorer")
	thrower := mustPlayer(t, repo, a, "Thrower")
	matchID := mustMatch(t, repo, a, b, time.Now())
	match, _ := repo.GetMatch(ctx, matchID)

	match.Team1Score = 1
	if _, err := repo.RecordScore(ctx, &models.Score{MatchID: matchID, PlayerID: scorer, ActionType: models.ActionScore, Points: 1, AssistPlayerID: &thrower}, match); err != nil {
		t.Fatalf("RecordScore failed: %v", err)
	}

	if err := repo.DeletePlayer(ctx, thrower); err != nil {
		t.Fatalf("DeletePlayer failed: %v", err)
	}

	scores, _ := repo.ListScores(ctx, matchID)
	if len(scores) != 1 {
		t.Fatalf("expected scorer's event to remain, got %d", len(scores))
	}
	if scores[0].AssistPlayerID != nil {
		t.Errorf("expected assist to be cleared, got %v", *scores[0].AssistPlayerID)
	}

	if err := repo.DeletePlayer(ctx, thrower); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ==================== Match Tests ====================

func TestCreateMatch_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	date := time.Date(2024, 7, 4, 9, 30, 0, 0, time.UTC)

	id, err := repo.CreateMatch(ctx, models.Match{
		Team1ID: a, Team2ID: b, MatchDate: date, Location: "Field 3",
		Status: models.StatusScheduled, Stage: models.StageFinals, DurationMinutes: 90, MaxScore: 13,
	})
	if err != nil {
		t.Fatalf("CreateMatch failed: %v", err)
	}

	m, err := repo.GetMatch(ctx, int(id))
	if err != nil {
		t.Fatalf("GetMatch failed: %v", err)
	}
	if m.Team1Name != "A" || m.Team2Name != "B" {
		t.Errorf("expected joined team names, got %q/%q", m.Team1Name, m.Team2Name)
	}
	if !m.MatchDate.Equal(date) {
		t.Errorf("expected match date %v, got %v", date, m.MatchDate)
	}
	if m.Stage != models.StageFinals || m.DurationMinutes != 90 || m.MaxScore != 13 || m.Location != "Field 3" {
		t.Errorf("unexpected match fields: %+v", m)
	}
	if m.StartTime != nil || m.OffenseTeamID != nil || m.GenderRatio != "" {
		t.Errorf("expected empty live state, got %+v", m)
	}
}

func TestCreateMatch_SameTeamRejected(t *testing.T) {
	repo := newTestRepo(t)
	a := mustTeam(t, repo, "A")

	_, err := repo.CreateMatch(context.Background(), models.Match{
		Team1ID: a, Team2ID: a, MatchDate: time.Now(), Status: models.StatusScheduled, Stage: models.StagePool,
	})
	if err == nil {
		t.Error("expected check constraint failure")
	}
}

func TestListMatches_OrderAndFilter(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	early := mustMatch(t, repo, a, b, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	late := mustMatch(t, repo, a, b, time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC))

	if err := repo.UpdateMatchStatus(ctx, early, models.StatusCompleted); err != nil {
		t.Fatalf("UpdateMatchStatus failed: %v", err)
	}

	all, err := repo.ListMatches(ctx, "")
	if err != nil {
		t.Fatalf("ListMatches failed: %v", err)
	}
	if len(all) != 2 || all[0].ID != late || all[1].ID != early {
		t.Errorf("expected newest first, got %+v", all)
	}

	done, _ := repo.ListMatches(ctx, models.StatusCompleted)
	if len(done) != 1 || done[0].ID != early {
		t.Errorf("expected only completed match, got %+v", done)
	}

	if err := repo.UpdateMatchStatus(ctx, 999, models.StatusLive); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateMatchState_PersistsLiveFields(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	id := mustMatch(t, repo, a, b, time.Now())

	m, _ := repo.GetMatch(ctx, id)
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	m.Status = models.StatusLive
	m.StartTime = &start
	m.OffenseTeamID = &b
	m.DefenseTeamID = &a
	m.GenderRatio = models.RatioGirls
	m.TotalPointsPlayed = 3
	m.Team1Score, m.Team2Score = 2, 1

	if err := repo.UpdateMatchState(ctx, m); err != nil {
		t.Fatalf("UpdateMatchState failed: %v", err)
	}

	got, _ := repo.GetMatch(ctx, id)
	if got.Status != models.StatusLive || got.StartTime == nil || !got.StartTime.Equal(start) {
		t.Errorf("unexpected status/start: %+v", got)
	}
	if got.OffenseTeamID == nil || *got.OffenseTeamID != b || got.DefenseTeamID == nil || *got.DefenseTeamID != a {
		t.Errorf("unexpected possession: %v %v", got.OffenseTeamID, got.DefenseTeamID)
	}
	if got.GenderRatio != models.RatioGirls || got.TotalPointsPlayed != 3 || got.Team1Score != 2 || got.Team2Score != 1 {
		t.Errorf("unexpected state: %+v", got)
	}

	missing := &models.Match{ID: 999}
	if err := repo.UpdateMatchState(ctx, missing); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMatch_RemovesScoresAndSpirit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	p := mustPlayer(t, repo, a, "Ann")
	id := mustMatch(t, repo, a, b, time.Now())
	m, _ := repo.GetMatch(ctx, id)

	if _, err := repo.RecordScore(ctx, &models.Score{MatchID: id, PlayerID: p, ActionType: models.ActionScore, Points: 1}, m); err != nil {
		t.Fatalf("RecordScore failed: %v", err)
	}
	if _, err := repo.CreateSpiritScore(ctx, models.SpiritScore{
		MatchID: id, GivingTeamID: a, ReceivingTeamID: b,
		RulesKnowledge: 3, FoulsContact: 3, FairMindedness: 3, PositiveAttitude: 3, Communication: 3,
	}); err != nil {
		t.Fatalf("CreateSpiritScore failed: %v", err)
	}

	if err := repo.DeleteMatch(ctx, id); err != nil {
		t.Fatalf("DeleteMatch failed: %v", err)
	}

	stats, _ := repo.GetStats(ctx)
	if stats.Matches != 0 || stats.ScoreEvents != 0 || stats.SpiritScores != 0 {
		t.Errorf("expected match data removed, got %+v", stats)
	}
	if err := repo.DeleteMatch(ctx, id); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ==================== Score Tests ====================

func TestRecordScore_AtomicWithMatchState(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	scorer := mustPlayer(t, repo, a, "Ann")
	thrower := mustPlayer(t, repo, a, "Amy")
	id := mustMatch(t, repo, a, b, time.Now())
	m, _ := repo.GetMatch(ctx, id)

	m.Team1Score = 1
	m.TotalPointsPlayed = 1
	s := &models.Score{MatchID: id, PlayerID: scorer, ActionType: models.ActionScore, Points: 1, AssistPlayerID: &thrower}
	scoreID, err := repo.RecordScore(ctx, s, m)
	if err != nil {
		t.Fatalf("RecordScore failed: %v", err)
	}
	if s.ID != int(scoreID) || s.Timestamp.IsZero() {
		t.Errorf("expected id and timestamp to be set, got %+v", s)
	}

	got, _ := repo.GetScore(ctx, int(scoreID))
	if got.PlayerName != "Ann" || got.TeamName != "A" || got.TeamID != a || got.AssistName != "Amy" {
		t.Errorf("unexpected joined score: %+v", got)
	}

	saved, _ := repo.GetMatch(ctx, id)
	if saved.Team1Score != 1 || saved.TotalPointsPlayed != 1 {
		t.Errorf("expected match state saved with event, got %+v", saved)
	}
}

func TestRecordScore_RollsBackWhenMatchMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	p := mustPlayer(t, repo, a, "Ann")
	id := mustMatch(t, repo, a, b, time.Now())

	// Event row is valid but the state update targets a missing match
	_, err := repo.RecordScore(ctx, &models.Score{MatchID: id, PlayerID: p, ActionType: models.ActionScore, Points: 1}, &models.Match{ID: 999})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	scores, _ := repo.ListScores(ctx, id)
	if len(scores) != 0 {
		t.Errorf("expected insert to be rolled back, got %d scores", len(scores))
	}
}

func TestDeleteScore_WrongMatch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	p := mustPlayer(t, repo, a, "Ann")
	first := mustMatch(t, repo, a, b, time.Now())
	second := mustMatch(t, repo, a, b, time.Now())
	m1, _ := repo.GetMatch(ctx, first)
	m2, _ := repo.GetMatch(ctx, second)

	scoreID, _ := repo.RecordScore(ctx, &models.Score{MatchID: first, PlayerID: p, ActionType: models.ActionScore, Points: 1}, m1)

	if err := repo.DeleteScore(ctx, int(scoreID), m2); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for score of another match, got %v", err)
	}
	if err := repo.DeleteScore(ctx, int(scoreID), m1); err != nil {
		t.Errorf("DeleteScore failed: %v", err)
	}
	if _, err := repo.GetScore(ctx, int(scoreID)); err != ErrNotFound {
		t.Errorf("expected score removed, got %v", err)
	}
}

func TestListScores_NewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	p := mustPlayer(t, repo, a, "Ann")
	id := mustMatch(t, repo, a, b, time.Now())
	m, _ := repo.GetMatch(ctx, id)

	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s := &models.Score{MatchID: id, PlayerID: p, ActionType: models.ActionScore, Points: 1, Timestamp: base.Add(time.Duration(i) * time.Minute)}
		if _, err := repo.RecordScore(ctx, s, m); err != nil {
			t.Fatalf("RecordScore failed: %v", err)
		}
	}

	scores, err := repo.ListScores(ctx, id)
	if err != nil {
		t.Fatalf("ListScores failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	if !scores[0].Timestamp.After(scores[2].Timestamp) {
		t.Errorf("expected newest first, got %v then %v", scores[0].Timestamp, scores[2].Timestamp)
	}
}

func TestPlayerTotals(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	ann := mustPlayer(t, repo, a, "Ann")
	amy := mustPlayer(t, repo, a, "Amy")
	ben := mustPlayer(t, repo, b, "Ben")
	id := mustMatch(t, repo, a, b, time.Now())
	m, _ := repo.GetMatch(ctx, id)

	events := []models.Score{
		{MatchID: id, PlayerID: ann, ActionType: models.ActionScore, Points: 1, AssistPlayerID: &amy},
		{MatchID: id, PlayerID: ann, ActionType: models.ActionScore, Points: 2},
		{MatchID: id, PlayerID: ben, ActionType: models.ActionDefense, Points: 0},
	}
	for i := range events {
		if _, err := repo.RecordScore(ctx, &events[i], m); err != nil {
			t.Fatalf("RecordScore failed: %v", err)
		}
	}

	totals, err := repo.PlayerTotals(ctx)
	if err != nil {
		t.Fatalf("PlayerTotals failed: %v", err)
	}
	want := []models.PlayerTotals{
		{PlayerID: ann, Points: 3, Assists: 0},
		{PlayerID: amy, Points: 0, Assists: 1},
		{PlayerID: ben, Points: 0, Assists: 0},
	}
	if len(totals) != len(want) {
		t.Fatalf("expected %d totals, got %d", len(want), len(totals))
	}
	for i := range want {
		if totals[i] != want[i] {
			t.Errorf("totals[%d] = %+v, want %+v", i, totals[i], want[i])
		}
	}
}

// ==================== Seeding Tests ====================

func TestSaveSeedings_UpsertAndDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	c := mustTeam(t, repo, "C")

	if err := repo.SaveSeedings(ctx, map[int]int{a: 2, b: 1, c: 3}); err != nil {
		t.Fatalf("SaveSeedings failed: %v", err)
	}
	if err := repo.SaveSeedings(ctx, map[int]int{a: 1, c: 0}); err != nil {
		t.Fatalf("SaveSeedings update failed: %v", err)
	}

	seedings, err := repo.ListSeedings(ctx)
	if err != nil {
		t.Fatalf("ListSeedings failed: %v", err)
	}
	if len(seedings) != 2 {
		t.Fatalf("expected 2 seedings, got %+v", seedings)
	}
	// a and b both rank 1, tie broken by team id
	if seedings[0].TeamID != a || seedings[1].TeamID != b {
		t.Errorf("unexpected order: %+v", seedings)
	}
	if seedings[0].TeamName != "A" {
		t.Errorf("expected joined team name, got %q", seedings[0].TeamName)
	}
}

func TestSaveSeedings_UnknownTeamRollsBack(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")

	if err := repo.SaveSeedings(ctx, map[int]int{a: 1, 999: 2}); err == nil {
		t.Fatal("expected foreign key failure")
	}
	seedings, _ := repo.ListSeedings(ctx)
	if len(seedings) != 0 {
		t.Errorf("expected rollback, got %+v", seedings)
	}
}

// ==================== Spirit Tests ====================

func TestCreateSpiritScore_DuplicateTriple(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	id := mustMatch(t, repo, a, b, time.Now())

	s := models.SpiritScore{
		MatchID: id, GivingTeamID: a, ReceivingTeamID: b, Day: "Day 1",
		RulesKnowledge: 4, FoulsContact: 3, FairMindedness: 4, PositiveAttitude: 5, Communication: 2,
		MVPNames: "Ben", Feedback: "great game",
	}
	if _, err := repo.CreateSpiritScore(ctx, s); err != nil {
		t.Fatalf("CreateSpiritScore failed: %v", err)
	}
	if _, err := repo.CreateSpiritScore(ctx, s); !stderrors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	received, err := repo.ListSpiritScoresForTeam(ctx, b)
	if err != nil {
		t.Fatalf("ListSpiritScoresForTeam failed: %v", err)
	}
	if len(received) != 1 || received[0].Communication != 2 || received[0].MVPNames != "Ben" {
		t.Errorf("unexpected spirit scores: %+v", received)
	}

	given, _ := repo.ListSpiritScoresForTeam(ctx, a)
	if len(given) != 0 {
		t.Errorf("expected no scores received by A, got %d", len(given))
	}
}

func TestCreateSpiritScore_RatingOutOfRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	id := mustMatch(t, repo, a, b, time.Now())

	_, err := repo.CreateSpiritScore(ctx, models.SpiritScore{
		MatchID: id, GivingTeamID: a, ReceivingTeamID: b,
		RulesKnowledge: 6, FoulsContact: 3, FairMindedness: 3, PositiveAttitude: 3, Communication: 3,
	})
	if err == nil {
		t.Error("expected check constraint failure for rating 6")
	}
}

// ==================== Admin Tests ====================

func TestAdmins(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, _ := repo.CountAdmins(ctx)
	if count != 0 {
		t.Fatalf("expected no admins, got %d", count)
	}

	id, err := repo.CreateAdmin(ctx, "admin", "hash-1")
	if err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}
	if _, err := repo.CreateAdmin(ctx, "admin", "hash-2"); !stderrors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	if err := repo.UpdateAdminPassword(ctx, int(id), "hash-3"); err != nil {
		t.Fatalf("UpdateAdminPassword failed: %v", err)
	}
	admin, err := repo.GetAdminByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetAdminByUsername failed: %v", err)
	}
	if admin.PasswordHash != "hash-3" {
		t.Errorf("expected updated hash, got %q", admin.PasswordHash)
	}

	if _, err := repo.GetAdminByUsername(ctx, "ghost"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := repo.UpdateAdminPassword(ctx, 999, "x"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ==================== Import Tests ====================

func TestImportRoster(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	mustTeam(t, repo, "Existing")

	teams, players, err := repo.ImportRoster(ctx,
		[]string{"Newcomers", "existing"},
		[]RosterPlayer{
			{Name: "Ann", TeamName: "newcomers", JerseyNumber: "4"},
			{Name: "Ben", TeamName: "EXISTING"},
		})
	if err != nil {
		t.Fatalf("ImportRoster failed: %v", err)
	}
	if teams != 1 || players != 2 {
		t.Errorf("expected 1 team and 2 players, got %d and %d", teams, players)
	}

	all, _ := repo.ListPlayers(ctx, nil)
	if len(all) != 2 || all[0].TeamName != "Newcomers" || all[0].JerseyNumber != "4" {
		t.Errorf("unexpected players: %+v", all)
	}
}

func TestImportRoster_UnknownTeamWritesNothing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, _, err := repo.ImportRoster(ctx,
		[]string{"Alpha"},
		[]RosterPlayer{{Name: "Ann", TeamName: "Alpha"}, {Name: "Zed", TeamName: "Omega"}})
	if !stderrors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	stats, _ := repo.GetStats(ctx)
	if stats.Teams != 0 || stats.Players != 0 {
		t.Errorf("expected nothing written, got %+v", stats)
	}
}

func TestGetStats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustTeam(t, repo, "A")
	b := mustTeam(t, repo, "B")
	mustPlayer(t, repo, a, "Ann")
	live := mustMatch(t, repo, a, b, time.Now())
	mustMatch(t, repo, a, b, time.Now())
	repo.UpdateMatchStatus(ctx, live, models.StatusLive)

	stats, err := repo.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.Teams != 2 || stats.Players != 1 || stats.Matches != 2 || stats.LiveMatches != 1 || stats.CompletedMatches != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
