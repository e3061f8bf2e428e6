package queries

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

type GetOwnerQuery struct {
	SessionID uuid.UUID
}

func (q GetOwnerQuery) Validate() error {
	if q.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", q.SessionID)
	}

	return nil
}

type GetOwnerResponse struct {
	CreatorID string `json:"creatorId"`
}

func HandleGetOwner(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.WriteBadRequest(w, r, fmt.Errorf("invalid session id - '%s'", chi.URLParam(r, "id")))
		return
	}

	response, err := mediator.Send[GetOwnerQuery, GetOwnerResponse](
		r.Context(),
		GetOwnerQuery{SessionID: sessionID},
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetOwnerQueryHandler struct {
	store store.SessionStore
}

func NewGetOwnerQueryHandler(store store.SessionStore) *GetOwnerQueryHandler {
	return &GetOwnerQueryHandler{store}
}

func (h *GetOwnerQueryHandler) Handle(ctx context.Context, request GetOwnerQuery) (GetOwnerResponse, error) {
	session, err := h.store.GetSession(ctx, request.SessionID)
	if err != nil {
		return GetOwnerResponse{}, queryError(err)
	}

	return GetOwnerResponse{CreatorID: session.CreatorID}, nil
}
