package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/google/uuid"
)

type CreatePrivateSessionCommand struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	CreatorID      string   `json:"creatorId"`
	InvitedUserIDs []string `json:"invitedUserIds"`
	Category       string   `json:"category"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

func (c CreatePrivateSessionCommand) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("invalid Title - '%s'", c.Title)
	}

	if c.Location == "" {
		return fmt.Errorf("invalid Location - '%s'", c.Location)
	}

	if c.CreatorID == "" {
		return fmt.Errorf("invalid CreatorID - '%s'", c.CreatorID)
	}

	return nil
}

func HandleCreatePrivateSession(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CreatePrivateSessionCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[CreatePrivateSessionCommand, domain.SessionDetails](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type CreatePrivateSessionCommandHandler struct {
	store store.SessionStore
	clock core.Clock
}

func NewCreatePrivateSessionCommandHandler(store store.SessionStore, clock core.Clock) *CreatePrivateSessionCommandHandler {
	return &CreatePrivateSessionCommandHandler{store, clock}
}

func (h *CreatePrivateSessionCommandHandler) Handle(
	ctx context.Context,
	request CreatePrivateSessionCommand,
) (domain.SessionDetails, error) {
	now := h.clock.Now()

	session := domain.Session{
		ID:          uuid.New(),
		Title:       request.Title,
		Description: request.Description,
		Location:    request.Location,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		CreatorID:   request.CreatorID,
		Type:        domain.TypePrivate,
		Status:      domain.StatusCreated,
		IsPrivate:   true,
		Category:    domain.ParseCategory(request.Category),
		Difficulty:  domain.DifficultyBeginner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.store.CreateSession(ctx, session); err != nil {
		return domain.SessionDetails{}, commandError(err)
	}

	for _, userID := range request.InvitedUserIDs {
		participant := domain.Participant{
			ID:        uuid.New(),
			SessionID: session.ID,
			UserID:    userID,
			Role:      domain.RoleInvestigator,
			Status:    domain.ParticipantInvited,
			JoinedAt:  now,
		}

		if err := h.store.AddParticipant(ctx, participant); err != nil {
			return domain.SessionDetails{}, commandError(err)
		}
	}

	return domain.NewSessionDetails(session), nil
}
