package handlers

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

// This file contains tests for edge cases that can't be reached through the router
// These tests live in the handlers package (not handlers_test) to access unexported methods

func withParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandlers_EmptyIDParam(t *testing.T) {
	// Services are nil; the handlers must bail before reaching them
	h := &Handlers{}

	tests := []struct {
		name    string
		handler http.HandlerFunc
		param   string
	}{
		{"delete team", h.handleDeleteTeam, "id"},
		{"delete player", h.handleDeletePlayer, "id"},
		{"delete match", h.handleDeleteMatch, "id"},
		{"match scores", h.handleGetMatchScores, "id"},
		{"match qr", h.handleGetMatchQR, "id"},
		{"end match", h.handleEndMatch, "id"},
		{"undo score", h.handleUndoScore, "scoreID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withParam(httptest.NewRequest(http.MethodPost, "/", nil), tt.param, "")
			rec := httptest.NewRecorder()

			tt.handler(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}
		})
	}
}

func TestHandleWhoAmI_NoIdentity(t *testing.T) {
	h := &Handlers{}

	rec := httptest.NewRecorder()
	h.handleWhoAmI(rec, httptest.NewRequest(http.MethodGet, "/api/admin/whoami", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestHandleChangePassword_NoIdentity(t *testing.T) {
	h := &Handlers{}

	rec := httptest.NewRecorder()
	h.handleChangePassword(rec, httptest.NewRequest(http.MethodPut, "/api/admin/password", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestMatchCreateRequest_ToInput(t *testing.T) {
	want := time.Date(2026, 6, 14, 9, 30, 0, 0, time.Local)

	tests := []struct {
		name    string
		date    string
		want    time.Time
		wantErr bool
	}{
		{"datetime-local", "2026-06-14T09:30", want, false},
		{"space separated", "2026-06-14 09:30", want, false},
		{"rfc3339", want.Format(time.RFC3339), want, false},
		{"padded", "  2026-06-14T09:30 ", want, false},
		{"empty", "", time.Time{}, false},
		{"garbage", "next tuesday", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := MatchCreateRequest{Team1ID: 1, Team2ID: 2, MatchDate: tt.date, MaxScore: 15}
			in, err := req.ToInput()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if apiErr, ok := err.(*APIError); !ok || apiErr.Status != http.StatusBadRequest {
					t.Errorf("expected 400 APIError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !in.MatchDate.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, in.MatchDate)
			}
			if in.Team1ID != 1 || in.Team2ID != 2 || in.MaxScore != 15 {
				t.Errorf("fields not copied: %+v", in)
			}
		})
	}
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		setup      func(*http.Request)
		want       string
	}{
		{"configured", "http://192.168.1.20:8080/", nil, "http://192.168.1.20:8080"},
		{"request host", "", nil, "http://example.com"},
		{"forwarded https", "", func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "https") }, "https://example.com"},
		{"tls", "", func(r *http.Request) { r.TLS = &tls.ConnectionState{} }, "https://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handlers{Options: Options{BaseURL: tt.configured}}
			req := httptest.NewRequest(http.MethodGet, "http://example.com/api/admin/matches/1/qr", nil)
			if tt.setup != nil {
				tt.setup(req)
			}
			if got := h.baseURL(req); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
