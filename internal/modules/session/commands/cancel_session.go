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

type CancelSessionCommand struct {
	SessionID uuid.UUID `json:"-"`
	UserID    string    `json:"userId"`
}

func (c CancelSessionCommand) Validate() error {
	if c.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	if c.UserID == "" {
		return fmt.Errorf("invalid UserID - '%s'", c.UserID)
	}

	return nil
}

func HandleCancelSession(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CancelSessionCommand](r)
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

	response, err := mediator.Send[CancelSessionCommand, domain.SessionDetails](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type CancelSessionCommandHandler struct {
	store store.SessionStore
	clock core.Clock
}

func NewCancelSessionCommandHandler(store store.SessionStore, clock core.Clock) *CancelSessionCommandHandler {
	return &CancelSessionCommandHandler{store, clock}
}

func (h *CancelSessionCommandHandler) Handle(
	ctx context.Context,
	request CancelSessionCommand,
) (domain.SessionDetails, error) {
	session, err := h.store.GetSession(ctx, request.SessionID)
	if err != nil {
		return domain.SessionDetails{}, commandError(err)
	}

	if session.CreatorID != request.UserID {
		return domain.SessionDetails{}, commandError(domain.ErrNotSessionOwner)
	}

	if err := session.Cancel(h.clock.Now()); err != nil {
		return domain.SessionDetails{}, commandError(err)
	}

	if err := h.store.UpdateSession(ctx, session); err != nil {
		return domain.SessionDetails{}, commandError(err)
	}

	return domain.NewSessionDetails(session), nil
}
