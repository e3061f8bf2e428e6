package queries

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
)

const recentlyUpdatedSessionLimit = 10

type ListRecentlyUpdatedSessionsQuery struct{}

func HandleListRecentlyUpdatedSessions(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[ListRecentlyUpdatedSessionsQuery, SessionListResponse](
		r.Context(),
		ListRecentlyUpdatedSessionsQuery{},
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type ListRecentlyUpdatedSessionsQueryHandler struct {
	store store.SessionStore
}

func NewListRecentlyUpdatedSessionsQueryHandler(store store.SessionStore) *ListRecentlyUpdatedSessionsQueryHandler {
	return &ListRecentlyUpdatedSessionsQueryHandler{store}
}

func (h *ListRecentlyUpdatedSessionsQueryHandler) Handle(
	ctx context.Context,
	_ ListRecentlyUpdatedSessionsQuery,
) (SessionListResponse, error) {
	sessions, err := h.store.ListSessions(ctx, store.Filter{
		OrderBy: store.OrderUpdatedDesc,
		Limit:   recentlyUpdatedSessionLimit,
	})
	if err != nil {
		return SessionListResponse{}, queryError(err)
	}

	return toListResponse(sessions), nil
}
