package queries

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type GetCreatedAtQuery struct {
	SessionID uuid.UUID
}

func (q GetCreatedAtQuery) Validate() error {
	if q.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", q.SessionID)
	}

	return nil
}

type GetCreatedAtResponse struct {
	CreatedAt time.Time `json:"createdAt"`
}

func HandleGetCreatedAt(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.WriteBadRequest(w, r, fmt.Errorf("invalid session id - '%s'", chi.URLParam(r, "id")))
		return
	}

	response, err := mediator.Send[GetCreatedAtQuery, GetCreatedAtResponse](
		r.Context(),
		GetCreatedAtQuery{SessionID: sessionID},
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetCreatedAtQueryHandler struct {
	store store.SessionStore
}

func NewGetCreatedAtQueryHandler(store store.SessionStore) *GetCreatedAtQueryHandler {
	return &GetCreatedAtQueryHandler{store}
}

func (h *GetCreatedAtQueryHandler) Handle(
	ctx context.Context,
	request GetCreatedAtQuery,
) (GetCreatedAtResponse, error) {
	session, err := h.store.GetSession(ctx, request.SessionID)
	if err != nil {
		return GetCreatedAtResponse{}, queryError(err)
	}

	return GetCreatedAtResponse{CreatedAt: session.CreatedAt}, nil
}
