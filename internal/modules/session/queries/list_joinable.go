package queries

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
)

type ListJoinableSessionsQuery struct{}

type JoinableSession struct {
	domain.SessionDetails
	MandatoryEquipment []string `json:"mandatoryEquipment"`
	RemainingSlots     *int     `json:"remainingSlots,omitempty"`
}

type JoinableSessionsResponse struct {
	Sessions []JoinableSession `json:"sessions"`
}

func HandleListJoinableSessions(w http.ResponseWriter, r *http.Request) {
	response, err := mediator.Send[ListJoinableSessionsQuery, JoinableSessionsResponse](
		r.Context(),
		ListJoinableSessionsQuery{},
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type ListJoinableSessionsQueryHandler struct {
	store store.SessionStore
}

func NewListJoinableSessionsQueryHandler(store store.SessionStore) *ListJoinableSessionsQueryHandler {
	return &ListJoinableSessionsQueryHandler{store}
}

func (h *ListJoinableSessionsQueryHandler) Handle(
	ctx context.Context,
	_ ListJoinableSessionsQuery,
) (JoinableSessionsResponse, error) {
	public := false
	sessions, err := h.store.ListSessions(ctx, store.Filter{
		IsPrivate:        &public,
		Statuses:         []domain.SessionStatus{domain.StatusCreated, domain.StatusScheduled},
		OnlyWithCapacity: true,
		OrderBy:          store.OrderCreatedDesc,
	})
	if err != nil {
		return JoinableSessionsResponse{}, queryError(err)
	}

	joinable := make([]JoinableSession, 0, len(sessions))
	for _, session := range sessions {
		equipment, err := h.store.ListEquipment(ctx, session.ID)
		if err != nil {
			return JoinableSessionsResponse{}, queryError(err)
		}

		mandatory := make([]string, 0, len(equipment))
		for _, item := range equipment {
			if item.IsMandatory {
				mandatory = append(mandatory, item.Name)
			}
		}

		item := JoinableSession{
			SessionDetails:     domain.NewSessionDetails(session),
			MandatoryEquipment: mandatory,
		}

		if remaining := session.RemainingSlots(); remaining >= 0 {
			item.RemainingSlots = &remaining
		}

		joinable = append(joinable, item)
	}

	return JoinableSessionsResponse{Sessions: joinable}, nil
}
