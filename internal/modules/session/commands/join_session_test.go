package commands

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	coremocks "github.com/eskrenkovic/session-management-go/internal/modules/core/mocks"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_JoinSession_Adds_Joined_Participant_And_Log_Entry(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)

	now := time.Date(2024, 10, 31, 23, 30, 0, 0, time.UTC)
	sessionID := uuid.New()
	userID := uuid.NewString()

	sessionStore := mocks.NewMockSessionStore(ctrl)
	clock := coremocks.NewMockClock(ctrl)

	clock.EXPECT().Now().Return(now)

	sessionStore.
		EXPECT().
		AddParticipant(gomock.Any(), gomock.Cond(func(x any) bool {
			p := x.(domain.Participant)
			return p.SessionID == sessionID &&
				p.UserID == userID &&
				p.Role == domain.RoleMedium &&
				p.Status == domain.ParticipantJoined &&
				p.JoinedAt.Equal(now)
		})).
		Return(nil)

	sessionStore.
		EXPECT().
		AppendLog(gomock.Any(), gomock.Cond(func(x any) bool {
			entry := x.(domain.LogEntry)
			return entry.SessionID == sessionID &&
				entry.UserID == userID &&
				entry.Type == domain.LogParticipantJoined
		})).
		Return(nil)

	handler := NewJoinSessionCommandHandler(sessionStore, clock)

	// Act
	response, err := handler.Handle(context.Background(), JoinSessionCommand{
		SessionID: sessionID,
		UserID:    userID,
		Role:      "medium",
	})

	// Assert
	require.NoError(t, err)
	require.NotEmpty(t, response.Message)
}

func Test_JoinSession_Defaults_Unknown_Role_To_Investigator(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)

	sessionStore := mocks.NewMockSessionStore(ctrl)
	clock := coremocks.NewMockClock(ctrl)

	clock.EXPECT().Now().Return(time.Now().UTC())

	sessionStore.
		EXPECT().
		AddParticipant(gomock.Any(), gomock.Cond(func(x any) bool {
			return x.(domain.Participant).Role == domain.RoleInvestigator
		})).
		Return(nil)

	sessionStore.EXPECT().AppendLog(gomock.Any(), gomock.Any()).Return(nil)

	handler := NewJoinSessionCommandHandler(sessionStore, clock)

	// Act
	_, err := handler.Handle(context.Background(), JoinSessionCommand{
		SessionID: uuid.New(),
		UserID:    uuid.NewString(),
		Role:      "ghost",
	})

	// Assert
	require.NoError(t, err)
}

func Test_JoinSession_Returns_409_When_Session_Full(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)

	sessionStore := mocks.NewMockSessionStore(ctrl)
	clock := coremocks.NewMockClock(ctrl)

	clock.EXPECT().Now().Return(time.Now().UTC())

	sessionStore.
		EXPECT().
		AddParticipant(gomock.Any(), gomock.Any()).
		Return(domain.ErrSessionFull)

	handler := NewJoinSessionCommandHandler(sessionStore, clock)

	// Act
	_, err := handler.Handle(context.Background(), JoinSessionCommand{
		SessionID: uuid.New(),
		UserID:    uuid.NewString(),
	})

	// Assert
	var cmdErr core.CommandError
	require.ErrorAs(t, err, &cmdErr)
	require.Equal(t, http.StatusConflict, cmdErr.StatusCode)
}

func Test_JoinSession_Returns_409_When_User_Already_Joined(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)

	sessionStore := mocks.NewMockSessionStore(ctrl)
	clock := coremocks.NewMockClock(ctrl)

	clock.EXPECT().Now().Return(time.Now().UTC())

	sessionStore.
		EXPECT().
		AddParticipant(gomock.Any(), gomock.Any()).
		Return(domain.ErrAlreadyJoined)

	handler := NewJoinSessionCommandHandler(sessionStore, clock)

	// Act
	_, err := handler.Handle(context.Background(), JoinSessionCommand{
		SessionID: uuid.New(),
		UserID:    uuid.NewString(),
	})

	// Assert
	var cmdErr core.CommandError
	require.ErrorAs(t, err, &cmdErr)
	require.Equal(t, http.StatusConflict, cmdErr.StatusCode)
}

func Test_JoinSessionCommand_Validate_Rejects_Missing_UserID(t *testing.T) {
	command := JoinSessionCommand{SessionID: uuid.New()}
	require.Error(t, command.Validate())
}
