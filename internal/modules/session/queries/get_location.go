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

type GetLocationQuery struct {
	SessionID uuid.UUID
}

func (q GetLocationQuery) Validate() error {
	if q.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", q.SessionID)
	}

	return nil
}

type GetLocationResponse struct {
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func HandleGetLocation(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.WriteBadRequest(w, r, fmt.Errorf("invalid session id - '%s'", chi.URLParam(r, "id")))
		return
	}

	response, err := mediator.Send[GetLocationQuery, GetLocationResponse](
		r.Context(),
		GetLocationQuery{SessionID: sessionID},
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetLocationQueryHandler struct {
	store store.SessionStore
}

func NewGetLocationQueryHandler(store store.SessionStore) *GetLocationQueryHandler {
	return &GetLocationQueryHandler{store}
}

func (h *GetLocationQueryHandler) Handle(
	ctx context.Context,
	request GetLocationQuery,
) (GetLocationResponse, error) {
	session, err := h.store.GetSession(ctx, request.SessionID)
	if err != nil {
		return GetLocationResponse{}, queryError(err)
	}

	return GetLocationResponse{
		Location:  session.Location,
		Latitude:  session.Latitude,
		Longitude: session.Longitude,
	}, nil
}
