package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type AssignChallengeCommand struct {
	SessionID   uuid.UUID `json:"-"`
	ChallengeID string    `json:"challengeId"`
}

func (c AssignChallengeCommand) Validate() error {
	if c.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	if c.ChallengeID == "" {
		return fmt.Errorf("invalid ChallengeID - '%s'", c.ChallengeID)
	}

	return nil
}

func HandleAssignChallenge(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[AssignChallengeCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.WriteBadRequest(w, r, fmt.Errorf("invalid session id - '%s'", chi.URLParam(r, "id")))
		return
	}
	command.SessionID = sessionID

	_, err = mediator.Send[AssignChallengeCommand, core.Unit](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type AssignChallengeCommandHandler struct {
	store store.SessionStore
	clock core.Clock
}

func NewAssignChallengeCommandHandler(store store.SessionStore, clock core.Clock) *AssignChallengeCommandHandler {
	return &AssignChallengeCommandHandler{store, clock}
}

func (h *AssignChallengeCommandHandler) Handle(
	ctx context.Context,
	request AssignChallengeCommand,
) (core.Unit, error) {
	challenge := domain.Challenge{
		ID:          uuid.New(),
		SessionID:   request.SessionID,
		ChallengeID: request.ChallengeID,
		AssignedAt:  h.clock.Now(),
		Status:      domain.ChallengeAssigned,
	}

	if err := h.store.AppendChallenges(ctx, request.SessionID, []domain.Challenge{challenge}); err != nil {
		return core.Unit{}, commandError(err)
	}

	return core.Unit{}, nil
}
