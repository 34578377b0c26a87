package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		kind    Kind
		message string
	}{
		{"NotFound", NotFound("match not found"), ErrNotFound, "match not found"},
		{"NotFoundf", NotFoundf("player %d not found", 7), ErrNotFound, "player 7 not found"},
		{"Validation", Validation("player is not in this match"), ErrValidation, "player is not in this match"},
		{"Validationf", Validationf("rating %s must be between %d and %d", "fouls_contact", 1, 5), ErrValidation, "rating fouls_contact must be between 1 and 5"},
		{"Conflict", Conflict("match is not live"), ErrConflict, "match is not live"},
		{"Conflictf", Conflictf("team %q already exists", "Huckers"), ErrConflict, `team "Huckers" already exists`},
		{"InvalidInput", InvalidInput("offense team is required"), ErrInvalidInput, "offense team is required"},
		{"InvalidInputf", InvalidInputf("missing %s", "player_id"), ErrInvalidInput, "missing player_id"},
		{"Internalf", Internalf("migration %d failed", 2), ErrInternal, "migration 2 failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, tt.err.Kind)
			}
			if tt.err.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Message)
			}
			if tt.err.Err != nil {
				t.Errorf("expected no underlying error, got %v", tt.err.Err)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("expected Error() %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestInternal_WrapsUnderlying(t *testing.T) {
	underlying := errors.New("database is locked")
	err := Internal(underlying)

	if err.Kind != ErrInternal {
		t.Errorf("expected ErrInternal, got %v", err.Kind)
	}
	if err.Error() != "internal error: database is locked" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, underlying) {
		t.Error("expected errors.Is to find the underlying error")
	}
}

func TestWrap(t *testing.T) {
	underlying := errors.New("no such row")
	err := Wrap(underlying, ErrNotFound, "score not found")

	if err.Kind != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err.Kind)
	}
	if err.Unwrap() != underlying {
		t.Error("expected Unwrap to return the underlying error")
	}
	if err.Error() != "score not found: no such row" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"app error", Conflict("already completed"), ErrConflict},
		{"wrapped app error", fmt.Errorf("start match: %w", InvalidInput("offense team is required")), ErrInvalidInput},
		{"plain error", errors.New("boom"), ErrInternal},
		{"nil", nil, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	if Is(nil, ErrInternal) {
		t.Error("nil error should not match any kind")
	}
	if !Is(Validation("bad ratio"), ErrValidation) {
		t.Error("expected validation error to match ErrValidation")
	}
	if Is(Validation("bad ratio"), ErrConflict) {
		t.Error("validation error should not match ErrConflict")
	}
	if !IsNotFound(fmt.Errorf("lookup: %w", NotFound("team not found"))) {
		t.Error("expected wrapped not found to be detected")
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		ErrInternal:     "internal",
		ErrNotFound:     "not_found",
		ErrValidation:   "validation",
		ErrConflict:     "conflict",
		ErrInvalidInput: "invalid_input",
		Kind(99):        "internal",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
