package store

import (
	"context"
	"time"

	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/eskrenkovic/session-management-go/internal/modules/session/store SessionStore

// SessionStore is the persistence boundary for the session aggregate
// and its child collections. Implementations own atomicity - most
// notably the capacity check inside AddParticipant.
type SessionStore interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSession(ctx context.Context, id uuid.UUID) (domain.Session, error)
	UpdateSession(ctx context.Context, session domain.Session) error
	ListSessions(ctx context.Context, filter Filter) ([]domain.Session, error)

	// AddParticipant appends a participant row. For rows with status
	// joined the insert is conditional: it fails with
	// domain.ErrSessionFull when the session is at capacity and with
	// domain.ErrAlreadyJoined when the user already holds an active
	// row. The whole check-and-insert runs under a session-row lock.
	AddParticipant(ctx context.Context, participant domain.Participant) error
	MarkParticipantLeft(ctx context.Context, sessionID uuid.UUID, userID string, leftAt time.Time) error
	ListParticipants(ctx context.Context, sessionID uuid.UUID) ([]domain.Participant, error)

	AppendRules(ctx context.Context, sessionID uuid.UUID, rules []domain.Rule) error
	AppendEquipment(ctx context.Context, sessionID uuid.UUID, equipment []domain.RequiredEquipment) error
	AppendChallenges(ctx context.Context, sessionID uuid.UUID, challenges []domain.Challenge) error
	ListRules(ctx context.Context, sessionID uuid.UUID) ([]domain.Rule, error)
	ListEquipment(ctx context.Context, sessionID uuid.UUID) ([]domain.RequiredEquipment, error)
	ListChallenges(ctx context.Context, sessionID uuid.UUID) ([]domain.Challenge, error)

	AppendLog(ctx context.Context, entry domain.LogEntry) error
	ListLogs(ctx context.Context, sessionID uuid.UUID) ([]domain.LogEntry, error)

	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}
