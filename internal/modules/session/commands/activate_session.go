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

type ActivateSessionCommand struct {
	SessionID uuid.UUID `json:"-"`
}

func (c ActivateSessionCommand) Validate() error {
	if c.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	return nil
}

func HandleActivateSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.WriteBadRequest(w, r, fmt.Errorf("invalid session id - '%s'", chi.URLParam(r, "id")))
		return
	}

	command := ActivateSessionCommand{SessionID: sessionID}

	response, err := mediator.Send[ActivateSessionCommand, domain.SessionDetails](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type ActivateSessionCommandHandler struct {
	store store.SessionStore
	clock core.Clock
}

func NewActivateSessionCommandHandler(store store.SessionStore, clock core.Clock) *ActivateSessionCommandHandler {
	return &ActivateSessionCommandHandler{store, clock}
}

func (h *ActivateSessionCommandHandler) Handle(
	ctx context.Context,
	request ActivateSessionCommand,
) (domain.SessionDetails, error) {
	session, err := h.store.GetSession(ctx, request.SessionID)
	if err != nil {
		return domain.SessionDetails{}, commandError(err)
	}

	if err := session.Activate(h.clock.Now()); err != nil {
		return domain.SessionDetails{}, commandError(err)
	}

	if err := h.store.UpdateSession(ctx, session); err != nil {
		return domain.SessionDetails{}, commandError(err)
	}

	return domain.NewSessionDetails(session), nil
}
