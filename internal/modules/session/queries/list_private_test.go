package queries

import (
	"context"
	"testing"

	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_ListPrivateSessions_Passes_Opaque_User_ID_Into_Filter(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)

	session := domain.Session{ID: uuid.New(), IsPrivate: true, CreatorID: "ghosthunter42"}

	sessionStore := mocks.NewMockSessionStore(ctrl)
	sessionStore.
		EXPECT().
		ListSessions(gomock.Any(), gomock.Cond(func(x any) bool {
			f := x.(store.Filter)
			return f.InvolvedUserID == "ghosthunter42" &&
				f.IsPrivate != nil && *f.IsPrivate &&
				f.OrderBy == store.OrderCreatedDesc
		})).
		Return([]domain.Session{session}, nil)

	handler := NewListPrivateSessionsQueryHandler(sessionStore)

	// Act
	response, err := handler.Handle(context.Background(), ListPrivateSessionsQuery{UserID: "ghosthunter42"})

	// Assert
	require.NoError(t, err)
	require.Len(t, response.Sessions, 1)
	require.Equal(t, session.ID, response.Sessions[0].ID)
}

func Test_ListPrivateSessionsQuery_Validate_Accepts_Any_Non_Empty_User_ID(t *testing.T) {
	require.NoError(t, ListPrivateSessionsQuery{UserID: "ghosthunter42"}.Validate())
	require.NoError(t, ListPrivateSessionsQuery{UserID: uuid.NewString()}.Validate())
	require.Error(t, ListPrivateSessionsQuery{}.Validate())
}
