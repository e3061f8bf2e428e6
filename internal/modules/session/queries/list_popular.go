package queries

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
)

const popularSessionLimit = 10

type ListPopularSessionsQuery struct{}

func HandleListPopularSessions(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[ListPopularSessionsQuery, SessionListResponse](
		r.Context(),
		ListPopularSessionsQuery{},
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type ListPopularSessionsQueryHandler struct {
	store store.SessionStore
}

func NewListPopularSessionsQueryHandler(store store.SessionStore) *ListPopularSessionsQueryHandler {
	return &ListPopularSessionsQueryHandler{store}
}

func (h *ListPopularSessionsQueryHandler) Handle(
	ctx context.Context,
	_ ListPopularSessionsQuery,
) (SessionListResponse, error) {
	sessions, err := h.store.ListSessions(ctx, store.Filter{
		OrderBy: store.OrderPopularity,
		Limit:   popularSessionLimit,
	})
	if err != nil {
		return SessionListResponse{}, queryError(err)
	}

	return toListResponse(sessions), nil
}
