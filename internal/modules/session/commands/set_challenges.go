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

type ChallengeItem struct {
	ChallengeID string `json:"challengeId"`
}

type SetSessionChallengesCommand struct {
	SessionID  uuid.UUID       `json:"sessionId"`
	Challenges []ChallengeItem `json:"challenges"`
}

func (c SetSessionChallengesCommand) Validate() error {
	if c.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	for _, challenge := range c.Challenges {
		if challenge.ChallengeID == "" {
			return fmt.Errorf("invalid ChallengeID - '%s'", challenge.ChallengeID)
		}
	}

	return nil
}

type SetSessionChallengesResponse struct {
	ChallengeCount int `json:"challengeCount"`
}

func HandleSetSessionChallenges(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[SetSessionChallengesCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[SetSessionChallengesCommand, SetSessionChallengesResponse](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type SetSessionChallengesCommandHandler struct {
	store store.SessionStore
	clock core.Clock
}

func NewSetSessionChallengesCommandHandler(
	store store.SessionStore,
	clock core.Clock,
) *SetSessionChallengesCommandHandler {
	return &SetSessionChallengesCommandHandler{store, clock}
}

func (h *SetSessionChallengesCommandHandler) Handle(
	ctx context.Context,
	request SetSessionChallengesCommand,
) (SetSessionChallengesResponse, error) {
	now := h.clock.Now()

	challenges := core.Map(request.Challenges, func(item ChallengeItem) domain.Challenge {
		return domain.Challenge{
			ID:          uuid.New(),
			SessionID:   request.SessionID,
			ChallengeID: item.ChallengeID,
			AssignedAt:  now,
			Status:      domain.ChallengeAssigned,
		}
	})

	if err := h.store.AppendChallenges(ctx, request.SessionID, challenges); err != nil {
		return SetSessionChallengesResponse{}, commandError(err)
	}

	return SetSessionChallengesResponse{ChallengeCount: len(challenges)}, nil
}
