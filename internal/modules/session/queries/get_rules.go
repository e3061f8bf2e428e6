package queries

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type GetRulesQuery struct {
	SessionID uuid.UUID
}

func (q GetRulesQuery) Validate() error {
	if q.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", q.SessionID)
	}

	return nil
}

type RuleView struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	IsMandatory bool                `json:"isMandatory"`
	Category    domain.RuleCategory `json:"category"`
}

type GetRulesResponse struct {
	Rules []RuleView `json:"rules"`
}

func HandleGetRules(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.WriteBadRequest(w, r, fmt.Errorf("invalid session id - '%s'", chi.URLParam(r, "id")))
		return
	}

	response, err := mediator.Send[GetRulesQuery, GetRulesResponse](
		r.Context(),
		GetRulesQuery{SessionID: sessionID},
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetRulesQueryHandler struct {
	store store.SessionStore
}

func NewGetRulesQueryHandler(store store.SessionStore) *GetRulesQueryHandler {
	return &GetRulesQueryHandler{store}
}

func (h *GetRulesQueryHandler) Handle(ctx context.Context, request GetRulesQuery) (GetRulesResponse, error) {
	if _, err := h.store.GetSession(ctx, request.SessionID); err != nil {
		return GetRulesResponse{}, queryError(err)
	}

	rules, err := h.store.ListRules(ctx, request.SessionID)
	if err != nil {
		return GetRulesResponse{}, queryError(err)
	}

	views := core.Map(rules, func(rule domain.Rule) RuleView {
		return RuleView{
			Title:       rule.Title,
			Description: rule.Description,
			IsMandatory: rule.IsMandatory,
			Category:    rule.Category,
		}
	})

	return GetRulesResponse{Rules: views}, nil
}
