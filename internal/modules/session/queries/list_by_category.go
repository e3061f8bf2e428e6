package queries

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type ListSessionsByCategoryQuery struct {
	Category domain.Category
}

func HandleListSessionsByCategory(w http.ResponseWriter, r *http.Request) {
	category, err := domain.ParseCategoryStrict(chi.URLParam(r, "type"))
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	query := ListSessionsByCategoryQuery{Category: category}

	response, err := mediator.Send[ListSessionsByCategoryQuery, SessionListResponse](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type ListSessionsByCategoryQueryHandler struct {
	store store.SessionStore
}

func NewListSessionsByCategoryQueryHandler(store store.SessionStore) *ListSessionsByCategoryQueryHandler {
	return &ListSessionsByCategoryQueryHandler{store}
}

func (h *ListSessionsByCategoryQueryHandler) Handle(
	ctx context.Context,
	request ListSessionsByCategoryQuery,
) (SessionListResponse, error) {
	sessions, err := h.store.ListSessions(ctx, store.Filter{
		Category: &request.Category,
		OrderBy:  store.OrderCreatedDesc,
	})
	if err != nil {
		return SessionListResponse{}, queryError(err)
	}

	return toListResponse(sessions), nil
}
