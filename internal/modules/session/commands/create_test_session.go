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

// Test sessions are throwaway fixtures used by clients to verify
// equipment and connectivity. They skip location requirements.
type CreateTestSessionCommand struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatorID   string `json:"creatorId"`
}

func (c CreateTestSessionCommand) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("invalid Title - '%s'", c.Title)
	}

	if c.CreatorID == "" {
		return fmt.Errorf("invalid CreatorID - '%s'", c.CreatorID)
	}

	return nil
}

func HandleCreateTestSession(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CreateTestSessionCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[CreateTestSessionCommand, domain.SessionDetails](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type CreateTestSessionCommandHandler struct {
	store store.SessionStore
	clock core.Clock
}

func NewCreateTestSessionCommandHandler(store store.SessionStore, clock core.Clock) *CreateTestSessionCommandHandler {
	return &CreateTestSessionCommandHandler{store, clock}
}

func (h *CreateTestSessionCommandHandler) Handle(
	ctx context.Context,
	request CreateTestSessionCommand,
) (domain.SessionDetails, error) {
	now := h.clock.Now()

	session := domain.Session{
		ID:          uuid.New(),
		Title:       request.Title,
		Description: request.Description,
		CreatorID:   request.CreatorID,
		Type:        domain.TypeTest,
		Status:      domain.StatusCreated,
		Category:    domain.CategoryOther,
		Difficulty:  domain.DifficultyBeginner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.store.CreateSession(ctx, session); err != nil {
		return domain.SessionDetails{}, commandError(err)
	}

	return domain.NewSessionDetails(session), nil
}
