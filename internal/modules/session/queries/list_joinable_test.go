package queries

import (
	"context"
	"testing"

	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_ListJoinableSessions_Returns_Mandatory_Equipment_Names(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)

	session := domain.Session{
		ID:              uuid.New(),
		Status:          domain.StatusCreated,
		MaxParticipants: 4,
		JoinedCount:     1,
	}

	sessionStore := mocks.NewMockSessionStore(ctrl)

	sessionStore.
		EXPECT().
		ListSessions(gomock.Any(), gomock.Any()).
		Return([]domain.Session{session}, nil)

	sessionStore.
		EXPECT().
		ListEquipment(gomock.Any(), session.ID).
		Return([]domain.RequiredEquipment{
			{Name: "emf meter", IsMandatory: true},
			{Name: "spare batteries", IsMandatory: false},
			{Name: "digital recorder", IsMandatory: true},
		}, nil)

	handler := NewListJoinableSessionsQueryHandler(sessionStore)

	// Act
	response, err := handler.Handle(context.Background(), ListJoinableSessionsQuery{})

	// Assert
	require.NoError(t, err)
	require.Len(t, response.Sessions, 1)

	joinable := response.Sessions[0]
	require.Equal(t, []string{"emf meter", "digital recorder"}, joinable.MandatoryEquipment)
	require.NotNil(t, joinable.RemainingSlots)
	require.Equal(t, 3, *joinable.RemainingSlots)
}

func Test_ListJoinableSessions_Omits_Remaining_Slots_For_Uncapped_Session(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)

	session := domain.Session{ID: uuid.New(), Status: domain.StatusCreated}

	sessionStore := mocks.NewMockSessionStore(ctrl)

	sessionStore.
		EXPECT().
		ListSessions(gomock.Any(), gomock.Any()).
		Return([]domain.Session{session}, nil)

	sessionStore.
		EXPECT().
		ListEquipment(gomock.Any(), session.ID).
		Return(nil, nil)

	handler := NewListJoinableSessionsQueryHandler(sessionStore)

	// Act
	response, err := handler.Handle(context.Background(), ListJoinableSessionsQuery{})

	// Assert
	require.NoError(t, err)
	require.Len(t, response.Sessions, 1)
	require.Nil(t, response.Sessions[0].RemainingSlots)
}
