package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/google/uuid"
)

type RuleItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsMandatory bool   `json:"isMandatory"`
	Category    string `json:"category"`
}

// SetSessionRulesCommand appends every submitted rule as a new row.
// Repeated calls accumulate duplicates - callers needing
// exactly-once semantics must not blindly retry.
type SetSessionRulesCommand struct {
	SessionID uuid.UUID  `json:"sessionId"`
	Rules     []RuleItem `json:"rules"`
}

func (c SetSessionRulesCommand) Validate() error {
	if c.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", c.SessionID)
	}

	for _, rule := range c.Rules {
		if rule.Title == "" {
			return fmt.Errorf("invalid rule Title - '%s'", rule.Title)
		}
	}

	return nil
}

type SetSessionRulesResponse struct {
	RuleCount int `json:"ruleCount"`
}

func HandleSetSessionRules(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[SetSessionRulesCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[SetSessionRulesCommand, SetSessionRulesResponse](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type SetSessionRulesCommandHandler struct {
	store store.SessionStore
}

func NewSetSessionRulesCommandHandler(store store.SessionStore) *SetSessionRulesCommandHandler {
	return &SetSessionRulesCommandHandler{store}
}

func (h *SetSessionRulesCommandHandler) Handle(
	ctx context.Context,
	request SetSessionRulesCommand,
) (SetSessionRulesResponse, error) {
	rules := core.Map(request.Rules, func(item RuleItem) domain.Rule {
		return domain.Rule{
			ID:          uuid.New(),
			SessionID:   request.SessionID,
			Title:       item.Title,
			Description: item.Description,
			IsMandatory: item.IsMandatory,
			Category:    domain.ParseRuleCategory(item.Category),
		}
	})

	if err := h.store.AppendRules(ctx, request.SessionID, rules); err != nil {
		return SetSessionRulesResponse{}, commandError(err)
	}

	return SetSessionRulesResponse{RuleCount: len(rules)}, nil
}
