package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseCategory_Falls_Back_To_Other(t *testing.T) {
	require.Equal(t, CategoryGhostHunt, ParseCategory("ghost_hunt"))
	require.Equal(t, CategoryOther, ParseCategory("seance"))
	require.Equal(t, CategoryOther, ParseCategory(""))
}

func Test_ParseCategoryStrict_Rejects_Unknown_Values(t *testing.T) {
	category, err := ParseCategoryStrict("ufo_watch")
	require.NoError(t, err)
	require.Equal(t, CategoryUFOWatch, category)

	_, err = ParseCategoryStrict("seance")
	require.Error(t, err)
}

func Test_ParseRuleCategory_Falls_Back_To_Other(t *testing.T) {
	require.Equal(t, RuleSafety, ParseRuleCategory("safety"))
	require.Equal(t, RuleOther, ParseRuleCategory("misc"))
}

func Test_ParseRole_Defaults_To_Investigator(t *testing.T) {
	require.Equal(t, RoleMedium, ParseRole("medium"))
	require.Equal(t, RoleInvestigator, ParseRole(""))
	require.Equal(t, RoleInvestigator, ParseRole("ghost"))
}

func Test_RemainingSlots(t *testing.T) {
	require.Equal(t, -1, Session{MaxParticipants: 0, JoinedCount: 3}.RemainingSlots())
	require.Equal(t, 2, Session{MaxParticipants: 5, JoinedCount: 3}.RemainingSlots())
	require.Equal(t, 0, Session{MaxParticipants: 3, JoinedCount: 3}.RemainingSlots())
}
