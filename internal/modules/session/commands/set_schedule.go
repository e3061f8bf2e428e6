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
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type SetScheduleCommand struct {
	SessionID uuid.UUID `json:"-"`
	StartTime time.Time `json:"startTime"`
	// Duration of the session in minutes.
	Duration int `json:"duration"`
}

func (c SetScheduleCommand) Validate() error {
	if c.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	if c.StartTime.IsZero() {
		return fmt.Errorf("missing StartTime")
	}

	if c.Duration <= 0 {
		return fmt.Errorf("invalid Duration - %d", c.Duration)
	}

	return nil
}

func HandleSetSchedule(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[SetScheduleCommand](r)
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

	response, err := mediator.Send[SetScheduleCommand, domain.SessionDetails](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type SetScheduleCommandHandler struct {
	store store.SessionStore
	clock core.Clock
}

func NewSetScheduleCommandHandler(store store.SessionStore, clock core.Clock) *SetScheduleCommandHandler {
	return &SetScheduleCommandHandler{store, clock}
}

func (h *SetScheduleCommandHandler) Handle(
	ctx context.Context,
	request SetScheduleCommand,
) (domain.SessionDetails, error) {
	session, err := h.store.GetSession(ctx, request.SessionID)
	if err != nil {
		return domain.SessionDetails{}, commandError(err)
	}

	if err := session.SetSchedule(request.StartTime, request.Duration, h.clock.Now()); err != nil {
		return domain.SessionDetails{}, commandError(err)
	}

	if err := h.store.UpdateSession(ctx, session); err != nil {
		return domain.SessionDetails{}, commandError(err)
	}

	return domain.NewSessionDetails(session), nil
}
