package queries

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type GetSessionDetailsQuery struct {
	SessionID uuid.UUID
}

func (q GetSessionDetailsQuery) Validate() error {
	if q.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", q.SessionID)
	}

	return nil
}

func HandleGetSessionDetails(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.WriteBadRequest(w, r, fmt.Errorf("invalid session id - '%s'", chi.URLParam(r, "id")))
		return
	}

	response, err := mediator.Send[GetSessionDetailsQuery, domain.SessionDetails](
		r.Context(),
		GetSessionDetailsQuery{SessionID: sessionID},
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetSessionDetailsQueryHandler struct {
	store store.SessionStore
}

func NewGetSessionDetailsQueryHandler(store store.SessionStore) *GetSessionDetailsQueryHandler {
	return &GetSessionDetailsQueryHandler{store}
}

// Handle never touches the view counter - recording a view is a
// separate, explicit command.
func (h *GetSessionDetailsQueryHandler) Handle(
	ctx context.Context,
	request GetSessionDetailsQuery,
) (domain.SessionDetails, error) {
	session, err := h.store.GetSession(ctx, request.SessionID)
	if err != nil {
		return domain.SessionDetails{}, queryError(err)
	}

	return domain.NewSessionDetails(session), nil
}

func queryError(err error) error {
	if errors.Is(err, domain.ErrSessionNotFound) {
		return core.NewCommandError(http.StatusNotFound, err)
	}

	return core.NewCommandError(http.StatusInternalServerError, err)
}
