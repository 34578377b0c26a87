package services

import (
	stderrors "errors"

	"github.com/abrezinsky/discscore/internal/errors"
	"github.com/abrezinsky/discscore/internal/repository"
)

// Match engine errors
var (
	ErrMatchNotScheduled = errors.Conflict("match has already been started")
	ErrMatchNotLive      = errors.Conflict("match is not live")
	ErrMatchCompleted    = errors.Conflict("match is already completed")
	ErrOffenseRequired   = errors.InvalidInput("offense team is required")
	ErrRatioRequired     = errors.InvalidInput("gender ratio is required")
	ErrPlayerRequired    = errors.InvalidInput("player is required")
	ErrInvalidRatio      = errors.Validation("gender ratio must be 4:3_boys or 4:3_girls")
	ErrNotParticipant    = errors.Validation("team is not playing in this match")
	ErrNegativePoints    = errors.Validation("points cannot be negative")
)

// repoError converts repository sentinels into application errors naming
// the entity involved. Other errors are returned as internal errors.
func repoError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, repository.ErrNotFound):
		return errors.NotFoundf("%s not found", entity)
	case stderrors.Is(err, repository.ErrDuplicate):
		return errors.Conflictf("%s already exists", entity)
	}
	var appErr *errors.Error
	if stderrors.As(err, &appErr) {
		return err
	}
	return errors.Internal(err)
}
