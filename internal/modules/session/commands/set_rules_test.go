package commands

import (
	"context"
	"testing"

	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_SetSessionRules_Parses_Categories_With_Fallback(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)

	sessionID := uuid.New()

	sessionStore := mocks.NewMockSessionStore(ctrl)

	sessionStore.
		EXPECT().
		AppendRules(gomock.Any(), sessionID, gomock.Cond(func(x any) bool {
			rules := x.([]domain.Rule)
			return len(rules) == 2 &&
				rules[0].Category == domain.RuleSafety &&
				rules[1].Category == domain.RuleOther
		})).
		Return(nil)

	handler := NewSetSessionRulesCommandHandler(sessionStore)

	// Act
	response, err := handler.Handle(context.Background(), SetSessionRulesCommand{
		SessionID: sessionID,
		Rules: []RuleItem{
			{Title: "buddy system at all times", Category: "safety"},
			{Title: "respect the location", Category: "house etiquette"},
		},
	})

	// Assert
	require.NoError(t, err)
	require.Equal(t, 2, response.RuleCount)
}

func Test_SetSessionRules_Repeated_Calls_Append_Again(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)

	sessionID := uuid.New()

	sessionStore := mocks.NewMockSessionStore(ctrl)

	sessionStore.
		EXPECT().
		AppendRules(gomock.Any(), sessionID, gomock.Len(1)).
		Return(nil).
		Times(2)

	handler := NewSetSessionRulesCommandHandler(sessionStore)

	command := SetSessionRulesCommand{
		SessionID: sessionID,
		Rules:     []RuleItem{{Title: "no provoking", Category: "behavior"}},
	}

	// Act
	_, err := handler.Handle(context.Background(), command)
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), command)

	// Assert
	require.NoError(t, err)
}
