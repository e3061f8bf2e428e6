package queries

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
)

type ListCompletedSessionsQuery struct{}

func HandleListCompletedSessions(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[ListCompletedSessionsQuery, SessionListResponse](
		r.Context(),
		ListCompletedSessionsQuery{},
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type ListCompletedSessionsQueryHandler struct {
	store store.SessionStore
}

func NewListCompletedSessionsQueryHandler(store store.SessionStore) *ListCompletedSessionsQueryHandler {
	return &ListCompletedSessionsQueryHandler{store}
}

func (h *ListCompletedSessionsQueryHandler) Handle(
	ctx context.Context,
	_ ListCompletedSessionsQuery,
) (SessionListResponse, error) {
	sessions, err := h.store.ListSessions(ctx, store.Filter{
		Statuses: []domain.SessionStatus{domain.StatusCompleted},
		OrderBy:  store.OrderEndedDesc,
	})
	if err != nil {
		return SessionListResponse{}, queryError(err)
	}

	return toListResponse(sessions), nil
}
