package commands

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/google/uuid"
)

type CreateScheduledSessionCommand struct {
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Location           string    `json:"location"`
	CreatorID          string    `json:"creatorId"`
	ScheduledStartTime time.Time `json:"scheduledStartTime"`
	ScheduledEndTime   time.Time `json:"scheduledEndTime"`
	MaxParticipants    int       `json:"maxParticipants"`
	Category           string    `json:"category"`
	Latitude           *float64  `json:"latitude"`
	Longitude          *float64  `json:"longitude"`
}

func (c CreateScheduledSessionCommand) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("invalid Title - '%s'", c.Title)
	}

	if c.Location == "" {
		return fmt.Errorf("invalid Location - '%s'", c.Location)
	}

	if c.CreatorID == "" {
		return fmt.Errorf("invalid CreatorID - '%s'", c.CreatorID)
	}

	if c.ScheduledStartTime.IsZero() {
		return fmt.Errorf("missing ScheduledStartTime")
	}

	if !c.ScheduledEndTime.After(c.ScheduledStartTime) {
		return fmt.Errorf("ScheduledEndTime must be after ScheduledStartTime")
	}

	if c.MaxParticipants < 0 {
		return fmt.Errorf("invalid MaxParticipants - %d", c.MaxParticipants)
	}

	return nil
}

func HandleCreateScheduledSession(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CreateScheduledSessionCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[CreateScheduledSessionCommand, domain.SessionDetails](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type CreateScheduledSessionCommandHandler struct {
	store store.SessionStore
	clock core.Clock
}

func NewCreateScheduledSessionCommandHandler(store store.SessionStore, clock core.Clock) *CreateScheduledSessionCommandHandler {
	return &CreateScheduledSessionCommandHandler{store, clock}
}

func (h *CreateScheduledSessionCommandHandler) Handle(
	ctx context.Context,
	request CreateScheduledSessionCommand,
) (domain.SessionDetails, error) {
	now := h.clock.Now()

	start := request.ScheduledStartTime
	end := request.ScheduledEndTime

	session := domain.Session{
		ID:                 uuid.New(),
		Title:              request.Title,
		Description:        request.Description,
		Location:           request.Location,
		Latitude:           request.Latitude,
		Longitude:          request.Longitude,
		CreatorID:          request.CreatorID,
		Type:               domain.TypeScheduled,
		Status:             domain.StatusScheduled,
		ScheduledStartTime: &start,
		ScheduledEndTime:   &end,
		MaxParticipants:    request.MaxParticipants,
		Category:           domain.ParseCategory(request.Category),
		Difficulty:         domain.DifficultyBeginner,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := h.store.CreateSession(ctx, session); err != nil {
		return domain.SessionDetails{}, commandError(err)
	}

	return domain.NewSessionDetails(session), nil
}
