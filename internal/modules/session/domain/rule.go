package domain

import "github.com/google/uuid"

type RuleCategory string

const (
	RuleSafety        RuleCategory = "safety"
	RuleEquipment     RuleCategory = "equipment"
	RuleCommunication RuleCategory = "communication"
	RuleInvestigation RuleCategory = "investigation"
	RuleBehavior      RuleCategory = "behavior"
	RuleOther         RuleCategory = "other"
)

var ruleCategories = map[RuleCategory]struct{}{
	RuleSafety:        {},
	RuleEquipment:     {},
	RuleCommunication: {},
	RuleInvestigation: {},
	RuleBehavior:      {},
	RuleOther:         {},
}

// ParseRuleCategory falls back to RuleOther for unparseable input
// instead of rejecting the rule.
func ParseRuleCategory(raw string) RuleCategory {
	if _, ok := ruleCategories[RuleCategory(raw)]; ok {
		return RuleCategory(raw)
	}

	return RuleOther
}

type Rule struct {
	ID          uuid.UUID    `db:"id"`
	SessionID   uuid.UUID    `db:"session_id"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	IsMandatory bool         `db:"is_mandatory"`
	Category    RuleCategory `db:"category"`
}
