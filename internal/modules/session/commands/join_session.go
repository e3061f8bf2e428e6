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

type JoinSessionCommand struct {
	SessionID uuid.UUID `json:"-"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
}

func (c JoinSessionCommand) Validate() error {
	if c.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	if c.UserID == "" {
		return fmt.Errorf("invalid UserID - '%s'", c.UserID)
	}

	return nil
}

type JoinSessionResponse struct {
	Message string `json:"message"`
}

func HandleJoinSession(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[JoinSessionCommand](r)
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

	response, err := mediator.Send[JoinSessionCommand, JoinSessionResponse](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type JoinSessionCommandHandler struct {
	store store.SessionStore
	clock core.Clock
}

func NewJoinSessionCommandHandler(store store.SessionStore, clock core.Clock) *JoinSessionCommandHandler {
	return &JoinSessionCommandHandler{store, clock}
}

// Handle appends a joined participant row. The store performs the
// capacity check and the duplicate-join check atomically under a
// session-row lock - the discovery-time capacity filter is only a
// read-side projection and is never trusted here.
func (h *JoinSessionCommandHandler) Handle(
	ctx context.Context,
	request JoinSessionCommand,
) (JoinSessionResponse, error) {
	now := h.clock.Now()

	participant := domain.Participant{
		ID:        uuid.New(),
		SessionID: request.SessionID,
		UserID:    request.UserID,
		Role:      domain.ParseRole(request.Role),
		Status:    domain.ParticipantJoined,
		JoinedAt:  now,
	}

	if err := h.store.AddParticipant(ctx, participant); err != nil {
		return JoinSessionResponse{}, commandError(err)
	}

	entry := domain.LogEntry{
		ID:          uuid.New(),
		SessionID:   request.SessionID,
		UserID:      request.UserID,
		Timestamp:   now,
		Type:        domain.LogParticipantJoined,
		Description: fmt.Sprintf("user '%s' joined the session", request.UserID),
	}

	if err := h.store.AppendLog(ctx, entry); err != nil {
		return JoinSessionResponse{}, commandError(err)
	}

	return JoinSessionResponse{Message: "user added to session"}, nil
}
