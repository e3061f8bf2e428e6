package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionDetails is the projection returned by creation commands and
// all listing queries.
type SessionDetails struct {
	ID               uuid.UUID     `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Type             SessionType   `json:"type"`
	Status           SessionStatus `json:"status"`
	Location         string        `json:"location"`
	CreatedAt        time.Time     `json:"createdAt"`
	CreatorID        string        `json:"creatorId"`
	Category         Category      `json:"category"`
	ParticipantCount int           `json:"participantCount"`
}

func NewSessionDetails(s Session) SessionDetails {
	return SessionDetails{
		ID:               s.ID,
		Title:            s.Title,
		Description:      s.Description,
		Type:             s.Type,
		Status:           s.Status,
		Location:         s.Location,
		CreatedAt:        s.CreatedAt,
		CreatorID:        s.CreatorID,
		Category:         s.Category,
		ParticipantCount: s.JoinedCount,
	}
}
