package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/abrezinsky/discscore/internal/auth"
	"github.com/abrezinsky/discscore/internal/handlers"
	"github.com/abrezinsky/discscore/internal/logger"
	"github.com/abrezinsky/discscore/internal/repository"
	"github.com/abrezinsky/discscore/internal/repository/mock"
	"github.com/abrezinsky/discscore/internal/services"
	"github.com/abrezinsky/discscore/internal/testutil"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "test-password"
)

// testSetup holds a router wired to real services over an in-memory database
type testSetup struct {
	repo       *repository.Repository
	handlers   *handlers.Handlers
	router     chi.Router
	authCookie *http.Cookie
	log        logger.Logger
}

// newServices builds every service over repo
func newServices(log logger.Logger, repo repository.FullRepository) handlers.Services {
	return handlers.Services{
		Team:        services.NewTeamService(log, repo),
		Player:      services.NewPlayerService(log, repo),
		Match:       services.NewMatchService(log, repo),
		Standings:   services.NewStandingsService(log, repo),
		Leaderboard: services.NewLeaderboardService(log, repo),
		Spirit:      services.NewSpiritService(log, repo),
		Import:      services.NewImportService(log, repo),
		Admin:       services.NewAdminService(log, repo),
	}
}

func newTestSetup(t *testing.T) *testSetup {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	return newTestSetupWithRepo(t, repo, repo)
}

// newTestSetupWithMockRepo wires the services to an error-injecting wrapper
func newTestSetupWithMockRepo(t *testing.T) (*testSetup, *mock.Repository) {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	mockRepo := mock.NewRepository(repo)
	return newTestSetupWithRepo(t, repo, mockRepo), mockRepo
}

func newTestSetupWithRepo(t *testing.T, real *repository.Repository, repo repository.FullRepository) *testSetup {
	t.Helper()
	log := logger.New()

	svc := newServices(log, repo)
	if _, err := svc.Admin.EnsureDefaultAdmin(context.Background(), testAdminUser, testAdminPassword); err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}

	adminAuth := auth.New(svc.Admin)
	h := handlers.NewForTesting(svc, adminAuth)

	token, err := adminAuth.Login(context.Background(), testAdminUser, testAdminPassword)
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}

	return &testSetup{
		repo:       real,
		handlers:   h,
		router:     h.Router(),
		authCookie: &http.Cookie{Name: auth.CookieName, Value: token},
		log:        log,
	}
}

// do sends a request through the router. Bodies that are not an io.Reader
// are encoded as JSON.
func (s *testSetup) do(t *testing.T, method, path string, body interface{}, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case io.Reader:
		reader = b
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.AddCookie(s.authCookie)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// admin sends an authenticated request
func (s *testSetup) admin(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, method, path, body, true)
}

// public sends an unauthenticated request
func (s *testSetup) public(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, method, path, body, false)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

// errorCode returns the code field of a JSON error response
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, rec, &body)
	return body.Code
}

// matchFixture is a scheduled match between two teams with two players each
type matchFixture struct {
	matchID, team1, team2 int
	alice, amy, bob, ben  int
}

func (s *testSetup) seedMatch(t *testing.T) matchFixture {
	t.Helper()
	f := matchFixture{}
	f.team1 = testutil.CreateTeam(t, s.repo, "Huckers")
	f.team2 = testutil.CreateTeam(t, s.repo, "Layouts")
	f.alice = testutil.CreatePlayer(t, s.repo, f.team1, "Alice")
	f.amy = testutil.CreatePlayer(t, s.repo, f.team1, "Amy")
	f.bob = testutil.CreatePlayer(t, s.repo, f.team2, "Bob")
	f.ben = testutil.CreatePlayer(t, s.repo, f.team2, "Ben")
	f.matchID = testutil.CreateMatch(t, s.repo, f.team1, f.team2)
	return f
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(s *testSetup, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}
