package domain

import "errors"

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionFull       = errors.New("session is at maximum participant capacity")
	ErrAlreadyJoined     = errors.New("user already has an active participant record for session")
	ErrParticipantAbsent = errors.New("no active participant record for user in session")
	ErrInvalidTransition = errors.New("invalid session state transition")
	ErrNotSessionOwner   = errors.New("user is not the session creator")
)
