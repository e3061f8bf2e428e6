package queries

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
)

// SessionListResponse is the shared named-collection envelope for
// every discovery listing.
type SessionListResponse struct {
	Sessions []domain.SessionDetails `json:"sessions"`
}

func toListResponse(sessions []domain.Session) SessionListResponse {
	return SessionListResponse{
		Sessions: core.Map(sessions, domain.NewSessionDetails),
	}
}

type ListSessionsQuery struct{}

func HandleListSessions(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[ListSessionsQuery, SessionListResponse](r.Context(), ListSessionsQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type ListSessionsQueryHandler struct {
	store store.SessionStore
}

func NewListSessionsQueryHandler(store store.SessionStore) *ListSessionsQueryHandler {
	return &ListSessionsQueryHandler{store}
}

func (h *ListSessionsQueryHandler) Handle(
	ctx context.Context,
	request ListSessionsQuery,
) (SessionListResponse, error) {
	sessions, err := h.store.ListSessions(ctx, store.Filter{OrderBy: store.OrderCreatedDesc})
	if err != nil {
		return SessionListResponse{}, queryError(err)
	}

	return toListResponse(sessions), nil
}
