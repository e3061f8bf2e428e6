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

type LeaveSessionCommand struct {
	SessionID uuid.UUID `json:"-"`
	UserID    string    `json:"userId"`
}

func (c LeaveSessionCommand) Validate() error {
	if c.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	if c.UserID == "" {
		return fmt.Errorf("invalid UserID - '%s'", c.UserID)
	}

	return nil
}

func HandleLeaveSession(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[LeaveSessionCommand](r)
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

	_, err = mediator.Send[LeaveSessionCommand, core.Unit](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type LeaveSessionCommandHandler struct {
	store store.SessionStore
	clock core.Clock
}

func NewLeaveSessionCommandHandler(store store.SessionStore, clock core.Clock) *LeaveSessionCommandHandler {
	return &LeaveSessionCommandHandler{store, clock}
}

// Handle marks the participant row left - the row is kept so the
// roster and activity log retain history.
func (h *LeaveSessionCommandHandler) Handle(
	ctx context.Context,
	request LeaveSessionCommand,
) (core.Unit, error) {
	now := h.clock.Now()

	if err := h.store.MarkParticipantLeft(ctx, request.SessionID, request.UserID, now); err != nil {
		return core.Unit{}, commandError(err)
	}

	entry := domain.LogEntry{
		ID:          uuid.New(),
		SessionID:   request.SessionID,
		UserID:      request.UserID,
		Timestamp:   now,
		Type:        domain.LogParticipantLeft,
		Description: fmt.Sprintf("user '%s' left the session", request.UserID),
	}

	if err := h.store.AppendLog(ctx, entry); err != nil {
		return core.Unit{}, commandError(err)
	}

	return core.Unit{}, nil
}
