package queries

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
)

type ListOpenSessionsQuery struct{}

func HandleListOpenSessions(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[ListOpenSessionsQuery, SessionListResponse](r.Context(), ListOpenSessionsQuery{})
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type ListOpenSessionsQueryHandler struct {
	store store.SessionStore
}

func NewListOpenSessionsQueryHandler(store store.SessionStore) *ListOpenSessionsQueryHandler {
	return &ListOpenSessionsQueryHandler{store}
}

func (h *ListOpenSessionsQueryHandler) Handle(
	ctx context.Context,
	request ListOpenSessionsQuery,
) (SessionListResponse, error) {
	filter := store.Filter{
		Statuses: []domain.SessionStatus{domain.StatusCreated, domain.StatusScheduled},
	}

	sessions, err := h.store.ListSessions(ctx, filter)
	if err != nil {
		return SessionListResponse{}, queryError(err)
	}

	return toListResponse(sessions), nil
}
