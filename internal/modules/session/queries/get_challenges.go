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

type GetChallengesQuery struct {
	SessionID uuid.UUID
}

func (q GetChallengesQuery) Validate() error {
	if q.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", q.SessionID)
	}

	return nil
}

type ChallengeView struct {
	ChallengeID string                 `json:"challengeId"`
	Status      domain.ChallengeStatus `json:"status"`
	AssignedAt  time.Time              `json:"assignedAt"`
	CompletedAt *time.Time             `json:"completedAt,omitempty"`
}

type GetChallengesResponse struct {
	Challenges []ChallengeView `json:"challenges"`
}

func HandleGetChallenges(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.WriteBadRequest(w, r, fmt.Errorf("invalid session id - '%s'", chi.URLParam(r, "id")))
		return
	}

	response, err := mediator.Send[GetChallengesQuery, GetChallengesResponse](
		r.Context(),
		GetChallengesQuery{SessionID: sessionID},
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetChallengesQueryHandler struct {
	store store.SessionStore
}

func NewGetChallengesQueryHandler(store store.SessionStore) *GetChallengesQueryHandler {
	return &GetChallengesQueryHandler{store}
}

func (h *GetChallengesQueryHandler) Handle(
	ctx context.Context,
	request GetChallengesQuery,
) (GetChallengesResponse, error) {
	if _, err := h.store.GetSession(ctx, request.SessionID); err != nil {
		return GetChallengesResponse{}, queryError(err)
	}

	challenges, err := h.store.ListChallenges(ctx, request.SessionID)
	if err != nil {
		return GetChallengesResponse{}, queryError(err)
	}

	views := core.Map(challenges, func(c domain.Challenge) ChallengeView {
		return ChallengeView{
			ChallengeID: c.ChallengeID,
			Status:      c.Status,
			AssignedAt:  c.AssignedAt,
			CompletedAt: c.CompletedAt,
		}
	})

	return GetChallengesResponse{Challenges: views}, nil
}
