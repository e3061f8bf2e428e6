package domain

import (
	"time"

	"github.com/google/uuid"
)

type ChallengeStatus string

const (
	ChallengeAssigned   ChallengeStatus = "assigned"
	ChallengeInProgress ChallengeStatus = "in_progress"
	ChallengeCompleted  ChallengeStatus = "completed"
	ChallengeFailed     ChallengeStatus = "failed"
	ChallengeExpired    ChallengeStatus = "expired"
)

// Challenge links a session to an externally managed challenge. The
// reward bookkeeping lives in the user-gamification service - only
// the assignment and its progress are tracked here.
type Challenge struct {
	ID          uuid.UUID       `db:"id"`
	SessionID   uuid.UUID       `db:"session_id"`
	ChallengeID string          `db:"challenge_id"`
	AssignedAt  time.Time       `db:"assigned_at"`
	CompletedAt *time.Time      `db:"completed_at"`
	Status      ChallengeStatus `db:"status"`
}
