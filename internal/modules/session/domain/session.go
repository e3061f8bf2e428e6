package domain

import (
	"time"

	"github.com/google/uuid"
)

type SessionType string

const (
	TypeQuick     SessionType = "quick"
	TypeScheduled SessionType = "scheduled"
	TypePrivate   SessionType = "private"
	TypeTest      SessionType = "test"
	TypeGroup     SessionType = "group"
)

type SessionStatus string

const (
	StatusCreated   SessionStatus = "created"
	StatusScheduled SessionStatus = "scheduled"
	StatusActive    SessionStatus = "active"
	StatusPaused    SessionStatus = "paused"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
)

// Terminal reports whether no further lifecycle transition is allowed.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

type Session struct {
	ID          uuid.UUID     `db:"id"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Type        SessionType   `db:"type"`
	Status      SessionStatus `db:"status"`
	IsPrivate   bool          `db:"is_private"`

	Location  string   `db:"location"`
	Latitude  *float64 `db:"latitude"`
	Longitude *float64 `db:"longitude"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	ScheduledStartTime *time.Time `db:"scheduled_start_time"`
	ScheduledEndTime   *time.Time `db:"scheduled_end_time"`
	ActualStartTime    *time.Time `db:"actual_start_time"`
	ActualEndTime      *time.Time `db:"actual_end_time"`

	CreatorID       string     `db:"creator_id"`
	MaxParticipants int        `db:"max_participants"`
	Category        Category   `db:"category"`
	Difficulty      Difficulty `db:"difficulty"`

	ViewCount        int     `db:"view_count"`
	JoinRequestCount int     `db:"join_request_count"`
	Rating           float64 `db:"rating"`

	// JoinedCount is a read-side projection of the number of
	// participant rows with status joined. It is populated by the
	// store on reads and never written back.
	JoinedCount int `db:"joined_count"`
}

// HasCoordinates reports whether the session can take part in
// proximity search.
func (s Session) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// HasCapacity reports whether another participant fits. A
// MaxParticipants of zero means the session is uncapped.
func (s Session) HasCapacity() bool {
	return s.MaxParticipants == 0 || s.JoinedCount < s.MaxParticipants
}

// RemainingSlots returns the number of open participant slots, or -1
// when the session is uncapped.
func (s Session) RemainingSlots() int {
	if s.MaxParticipants == 0 {
		return -1
	}

	remaining := s.MaxParticipants - s.JoinedCount
	if remaining < 0 {
		return 0
	}

	return remaining
}
