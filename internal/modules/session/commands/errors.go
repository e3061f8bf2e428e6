package commands

import (
	"errors"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
)

// commandError translates domain sentinels into transport errors.
// Anything unrecognized is an internal storage failure.
func commandError(err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrParticipantAbsent):
		return core.NewCommandError(http.StatusNotFound, err)
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrSessionFull),
		errors.Is(err, domain.ErrAlreadyJoined):
		return core.NewCommandError(http.StatusConflict, err)
	case errors.Is(err, domain.ErrNotSessionOwner):
		return core.NewCommandError(http.StatusForbidden, err)
	default:
		return core.NewCommandError(http.StatusInternalServerError, err)
	}
}
