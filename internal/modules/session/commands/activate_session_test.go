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

func Test_ActivateSession_Stamps_Actual_Start_Time(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)

	now := time.Date(2024, 10, 31, 22, 0, 0, 0, time.UTC)
	sessionID := uuid.New()

	sessionStore := mocks.NewMockSessionStore(ctrl)
	clock := coremocks.NewMockClock(ctrl)

	clock.EXPECT().Now().Return(now)

	sessionStore.
		EXPECT().
		GetSession(gomock.Any(), sessionID).
		Return(domain.Session{ID: sessionID, Status: domain.StatusCreated}, nil)

	sessionStore.
		EXPECT().
		UpdateSession(gomock.Any(), gomock.Cond(func(x any) bool {
			s := x.(domain.Session)
			return s.Status == domain.StatusActive &&
				s.ActualStartTime != nil &&
				s.ActualStartTime.Equal(now)
		})).
		Return(nil)

	handler := NewActivateSessionCommandHandler(sessionStore, clock)

	// Act
	details, err := handler.Handle(context.Background(), ActivateSessionCommand{SessionID: sessionID})

	// Assert
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, details.Status)
}

func Test_ActivateSession_Rejects_Every_Non_Activatable_State(t *testing.T) {
	nonActivatable := []domain.SessionStatus{
		domain.StatusActive,
		domain.StatusPaused,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for _, status := range nonActivatable {
		t.Run(string(status), func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)

			sessionID := uuid.New()

			sessionStore := mocks.NewMockSessionStore(ctrl)
			clock := coremocks.NewMockClock(ctrl)

			clock.EXPECT().Now().Return(time.Now().UTC())

			sessionStore.
				EXPECT().
				GetSession(gomock.Any(), sessionID).
				Return(domain.Session{ID: sessionID, Status: status}, nil)

			handler := NewActivateSessionCommandHandler(sessionStore, clock)

			// Act
			_, err := handler.Handle(context.Background(), ActivateSessionCommand{SessionID: sessionID})

			// Assert
			require.Error(t, err)

			var cmdErr core.CommandError
			require.ErrorAs(t, err, &cmdErr)
			require.Equal(t, http.StatusConflict, cmdErr.StatusCode)
		})
	}
}

func Test_ActivateSession_Returns_404_For_Unknown_Session(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)

	sessionID := uuid.New()

	sessionStore := mocks.NewMockSessionStore(ctrl)
	clock := coremocks.NewMockClock(ctrl)

	sessionStore.
		EXPECT().
		GetSession(gomock.Any(), sessionID).
		Return(domain.Session{}, domain.ErrSessionNotFound)

	handler := NewActivateSessionCommandHandler(sessionStore, clock)

	// Act
	_, err := handler.Handle(context.Background(), ActivateSessionCommand{SessionID: sessionID})

	// Assert
	var cmdErr core.CommandError
	require.ErrorAs(t, err, &cmdErr)
	require.Equal(t, http.StatusNotFound, cmdErr.StatusCode)
}
