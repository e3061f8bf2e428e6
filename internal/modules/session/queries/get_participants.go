package queries

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type GetParticipantsQuery struct {
	SessionID uuid.UUID
}

func (q GetParticipantsQuery) Validate() error {
	if q.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", q.SessionID)
	}

	return nil
}

type ParticipantView struct {
	UserID   string                   `json:"userId"`
	Role     domain.ParticipantRole   `json:"role"`
	Status   domain.ParticipantStatus `json:"status"`
	JoinedAt time.Time                `json:"joinedAt"`
	LeftAt   *time.Time               `json:"leftAt,omitempty"`
}

type GetParticipantsResponse struct {
	Participants []ParticipantView `json:"participants"`
}

func HandleGetParticipants(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.WriteBadRequest(w, r, fmt.Errorf("invalid session id - '%s'", chi.URLParam(r, "id")))
		return
	}

	response, err := mediator.Send[GetParticipantsQuery, GetParticipantsResponse](
		r.Context(),
		GetParticipantsQuery{SessionID: sessionID},
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetParticipantsQueryHandler struct {
	store store.SessionStore
}

func NewGetParticipantsQueryHandler(store store.SessionStore) *GetParticipantsQueryHandler {
	return &GetParticipantsQueryHandler{store}
}

// Handle returns every roster row regardless of status, in join
// order.
func (h *GetParticipantsQueryHandler) Handle(
	ctx context.Context,
	request GetParticipantsQuery,
) (GetParticipantsResponse, error) {
	if _, err := h.store.GetSession(ctx, request.SessionID); err != nil {
		return GetParticipantsResponse{}, queryError(err)
	}

	participants, err := h.store.ListParticipants(ctx, request.SessionID)
	if err != nil {
		return GetParticipantsResponse{}, queryError(err)
	}

	views := core.Map(participants, func(p domain.Participant) ParticipantView {
		return ParticipantView{
			UserID:   p.UserID,
			Role:     p.Role,
			Status:   p.Status,
			JoinedAt: p.JoinedAt,
			LeftAt:   p.LeftAt,
		}
	})

	return GetParticipantsResponse{Participants: views}, nil
}
