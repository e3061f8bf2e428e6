package queries

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
)

// User identity is an opaque string issued by the identity service -
// it is never parsed here, only matched against creator and
// participant rows.
type ListPrivateSessionsQuery struct {
	UserID string
}

func (q ListPrivateSessionsQuery) Validate() error {
	if q.UserID == "" {
		return fmt.Errorf("invalid UserID - '%s'", q.UserID)
	}

	return nil
}

func HandleListPrivateSessions(w http.ResponseWriter, r *http.Request) {
	query := ListPrivateSessionsQuery{UserID: r.URL.Query().Get("userId")}

	response, err := mediator.Send[ListPrivateSessionsQuery, SessionListResponse](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type ListPrivateSessionsQueryHandler struct {
	store store.SessionStore
}

func NewListPrivateSessionsQueryHandler(store store.SessionStore) *ListPrivateSessionsQueryHandler {
	return &ListPrivateSessionsQueryHandler{store}
}

func (h *ListPrivateSessionsQueryHandler) Handle(
	ctx context.Context,
	request ListPrivateSessionsQuery,
) (SessionListResponse, error) {
	private := true
	sessions, err := h.store.ListSessions(ctx, store.Filter{
		IsPrivate:      &private,
		InvolvedUserID: request.UserID,
		OrderBy:        store.OrderCreatedDesc,
	})
	if err != nil {
		return SessionListResponse{}, queryError(err)
	}

	return toListResponse(sessions), nil
}
