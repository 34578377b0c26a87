package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/abrezinsky/discscore/internal/models"
)

const (
	CookieName    = "discscore_session"
	SessionExpiry = 24 * time.Hour
)

// Authenticator checks admin credentials
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*models.Admin, error)
}

// Identity is the admin behind a request
type Identity struct {
	AdminID    int       `json:"admin_id"`
	Username   string    `json:"username"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

type session struct {
	identity Identity
	expires  time.Time
}

// Auth handles admin sessions
type Auth struct {
	authn    Authenticator
	sessions map[string]session
	mu       sync.RWMutex
	now      func() time.Time
}

// New creates a new Auth that checks logins against authn
func New(authn Authenticator) *Auth {
	return &Auth{
		authn:    authn,
		sessions: make(map[string]session),
		now:      time.Now,
	}
}

// Login validates the credentials and returns a session token. The
// authenticator's error is returned unchanged on failure.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := a.authn.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}

	now := a.now()
	a.mu.Lock()
	a.sessions[token] = session{
		identity: Identity{AdminID: admin.ID, Username: admin.Username, LoggedInAt: now},
		expires:  now.Add(SessionExpiry),
	}
	a.mu.Unlock()

	return token, nil
}

// Logout invalidates a session token
func (a *Auth) Logout(token string) {
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()
}

// Lookup returns the identity for a live session token
func (a *Auth) Lookup(token string) (*Identity, bool) {
	a.mu.RLock()
	s, exists := a.sessions[token]
	a.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if a.now().After(s.expires) {
		a.mu.Lock()
		delete(a.sessions, token)
		a.mu.Unlock()
		return nil, false
	}

	id := s.identity
	return &id, true
}

// IdentityFromRequest extracts and validates the session cookie of a request
func (a *Auth) IdentityFromRequest(r *http.Request) (*Identity, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, false
	}
	return a.Lookup(cookie.Value)
}

// RequireAuth middleware for admin pages (redirects to login)
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := a.IdentityFromRequest(r); ok {
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
			return
		}
		http.Redirect(w, r, "/admin/login", http.StatusFound)
	})
}

// RequireAuthAPI middleware for API endpoints (returns 401)
func (a *Auth) RequireAuthAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := a.IdentityFromRequest(r); ok {
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"UNAUTHORIZED","error":"Unauthorized - please log in"}`))
	})
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity stored by the auth middleware
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok && id != nil
}

// SetSessionCookie sets the session cookie on the response
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionExpiry.Seconds()),
	})
}

// ClearSessionCookie removes the session cookie
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// generateToken creates a random session token
func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
