package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	stderrors "errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/abrezinsky/discscore/internal/errors"
	"github.com/abrezinsky/discscore/internal/logger"
	"github.com/abrezinsky/discscore/internal/models"
	"github.com/abrezinsky/discscore/internal/repository"
)

// MinPasswordLength is the shortest password accepted for admin accounts
const MinPasswordLength = 8

// ErrInvalidCredentials is returned for an unknown user or a wrong password
var ErrInvalidCredentials = errors.Validation("invalid username or password")

// AdminServiceRepository defines the repository methods needed by AdminService
type AdminServiceRepository interface {
	repository.AdminRepository
	repository.StatsRepository
	ListMatches(ctx context.Context, status string) ([]models.Match, error)
}

// AdminService manages admin accounts and the dashboard
type AdminService struct {
	log  logger.Logger
	repo AdminServiceRepository
	cost int
}

// NewAdminService creates a new AdminService
func NewAdminService(log logger.Logger, repo AdminServiceRepository) *AdminService {
	return &AdminService{log: log, repo: repo, cost: bcrypt.DefaultCost}
}

// Dashboard holds the counters and live matches shown on the admin home page
type Dashboard struct {
	Stats       repository.Stats `json:"stats"`
	LiveMatches []models.Match   `json:"live_matches"`
}

// EnsureDefaultAdmin creates the first admin account when none exists.
// An empty password is replaced by a random one, which is returned so it
// can be shown once. Returns an empty string when no account was created.
func (s *AdminService) EnsureDefaultAdmin(ctx context.Context, username, password string) (string, error) {
	count, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", nil
	}
	if username == "" {
		return "", errors.InvalidInput("admin username is required")
	}
	if password == "" {
		password, err = randomPassword()
		if err != nil {
			return "", err
		}
	}

	hash, err := s.hash(password)
	if err != nil {
		return "", err
	}
	if _, err := s.repo.CreateAdmin(ctx, username, hash); err != nil {
		return "", repoError(err, "admin "+username)
	}
	s.log.Info("default admin created", "username", username)
	return password, nil
}

// Authenticate checks a username and password and returns the account
func (s *AdminService) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := s.repo.GetAdminByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		if stderrors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Internal(err)
	}
	return admin, nil
}

// ChangePassword replaces an admin's password after verifying the current one
func (s *AdminService) ChangePassword(ctx context.Context, username, current, next string) error {
	if len(next) < MinPasswordLength {
		return errors.Validationf("new password must be at least %d characters", MinPasswordLength)
	}
	admin, err := s.Authenticate(ctx, username, current)
	if err != nil {
		return err
	}
	hash, err := s.hash(next)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateAdminPassword(ctx, admin.ID, hash); err != nil {
		return repoError(err, "admin")
	}
	s.log.Info("admin password changed", "username", username)
	return nil
}

// Dashboard returns tournament counters and the matches in progress
func (s *AdminService) Dashboard(ctx context.Context) (*Dashboard, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	live, err := s.repo.ListMatches(ctx, models.StatusLive)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Stats: *stats, LiveMatches: live}, nil
}

func (s *AdminService) hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", errors.Internal(err)
	}
	return string(b), nil
}

func randomPassword() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
