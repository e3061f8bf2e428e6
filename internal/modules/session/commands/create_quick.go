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

type CreateQuickSessionCommand struct {
	Title     string   `json:"title"`
	Location  string   `json:"location"`
	CreatorID string   `json:"creatorId"`
	Category  string   `json:"category"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (c CreateQuickSessionCommand) Validate() error {
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

func HandleCreateQuickSession(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CreateQuickSessionCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[CreateQuickSessionCommand, domain.SessionDetails](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type CreateQuickSessionCommandHandler struct {
	store store.SessionStore
	clock core.Clock
}

func NewCreateQuickSessionCommandHandler(store store.SessionStore, clock core.Clock) *CreateQuickSessionCommandHandler {
	return &CreateQuickSessionCommandHandler{store, clock}
}

func (h *CreateQuickSessionCommandHandler) Handle(
	ctx context.Context,
	request CreateQuickSessionCommand,
) (domain.SessionDetails, error) {
	now := h.clock.Now()

	session := domain.Session{
		ID:         uuid.New(),
		Title:      request.Title,
		Location:   request.Location,
		Latitude:   request.Latitude,
		Longitude:  request.Longitude,
		CreatorID:  request.CreatorID,
		Type:       domain.TypeQuick,
		Status:     domain.StatusCreated,
		Category:   domain.ParseCategory(request.Category),
		Difficulty: domain.DifficultyBeginner,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.store.CreateSession(ctx, session); err != nil {
		return domain.SessionDetails{}, commandError(err)
	}

	return domain.NewSessionDetails(session), nil
}
