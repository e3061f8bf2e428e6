package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

// RecordViewCommand is the only operation that mutates the view
// counter. Listing queries never touch it.
type RecordViewCommand struct {
	SessionID uuid.UUID `json:"-"`
}

func (c RecordViewCommand) Validate() error {
	if c.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	return nil
}

func HandleRecordView(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.WriteBadRequest(w, r, fmt.Errorf("invalid session id - '%s'", chi.URLParam(r, "id")))
		return
	}

	_, err = mediator.Send[RecordViewCommand, core.Unit](r.Context(), RecordViewCommand{SessionID: sessionID})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, nil)
}

type RecordViewCommandHandler struct {
	store store.SessionStore
}

func NewRecordViewCommandHandler(store store.SessionStore) *RecordViewCommandHandler {
	return &RecordViewCommandHandler{store}
}

func (h *RecordViewCommandHandler) Handle(
	ctx context.Context,
	request RecordViewCommand,
) (core.Unit, error) {
	if err := h.store.IncrementViewCount(ctx, request.SessionID); err != nil {
		return core.Unit{}, commandError(err)
	}

	return core.Unit{}, nil
}
