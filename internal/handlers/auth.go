package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/abrezinsky/discscore/internal/auth"
	"github.com/abrezinsky/discscore/internal/services"
)

// LoginPageData holds data for the login template
type LoginPageData struct {
	Error    string
	Username string
}

// handleLoginPage renders the login form
func (h *Handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	// If already logged in, redirect to admin
	if _, ok := h.Auth.IdentityFromRequest(r); ok {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}

	h.templates.AdminLogin.Execute(w, LoginPageData{})
}

// handleLogin processes login form submission
func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	token, err := h.Auth.Login(r.Context(), username, password)
	if err != nil {
		msg := "Invalid username or password"
		if !stderrors.Is(err, services.ErrInvalidCredentials) {
			InternalError(err)
			msg = "Login failed, please try again"
		}
		w.WriteHeader(http.StatusUnauthorized)
		h.templates.AdminLogin.Execute(w, LoginPageData{Error: msg, Username: username})
		return
	}

	auth.SetSessionCookie(w, token)
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// handleLogout clears the session and redirects to login
func (h *Handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		h.Auth.Logout(cookie.Value)
	}

	auth.ClearSessionCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusFound)
}

// handleWhoAmI returns the identity attached to the request by the auth middleware
func (h *Handlers) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	respondOK(w, id)
}

// handleChangePassword updates the password of the logged-in admin
func (h *Handlers) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}

	var req PasswordChangeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Admin.ChangePassword(r.Context(), id.Username, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(w, err)
		return
	}

	respondSuccess(w, "Password updated")
}
