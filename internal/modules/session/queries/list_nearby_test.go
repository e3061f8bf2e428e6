package queries

import (
	"context"
	"testing"

	"github.com/eskrenkovic/session-management-go/internal/modules/geo"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sessionAt(lat, lon float64) domain.Session {
	return domain.Session{
		ID:        uuid.New(),
		Latitude:  &lat,
		Longitude: &lon,
	}
}

func Test_ListNearbySessions_Sorts_By_Distance_Ascending(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)

	far := sessionAt(0, 0.05)
	near := sessionAt(0, 0.01)

	sessionStore := mocks.NewMockSessionStore(ctrl)
	sessionStore.
		EXPECT().
		ListSessions(gomock.Any(), store.Filter{RequireCoordinates: true}).
		Return([]domain.Session{far, near}, nil)

	handler := NewListNearbySessionsQueryHandler(sessionStore)

	// Act
	response, err := handler.Handle(context.Background(), ListNearbySessionsQuery{
		Latitude:  0,
		Longitude: 0,
		RadiusKm:  10,
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, response.Sessions, 2)
	require.Equal(t, near.ID, response.Sessions[0].ID)
	require.Equal(t, far.ID, response.Sessions[1].ID)
	require.Less(t, response.Sessions[0].DistanceKm, response.Sessions[1].DistanceKm)
}

func Test_ListNearbySessions_Radius_Boundary_Is_Inclusive(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)

	onBoundary := sessionAt(0, 1)
	beyond := sessionAt(0, 1.001)

	sessionStore := mocks.NewMockSessionStore(ctrl)
	sessionStore.
		EXPECT().
		ListSessions(gomock.Any(), store.Filter{RequireCoordinates: true}).
		Return([]domain.Session{onBoundary, beyond}, nil)

	handler := NewListNearbySessionsQueryHandler(sessionStore)

	radius := geo.DistanceKm(0, 0, 0, 1)

	// Act
	response, err := handler.Handle(context.Background(), ListNearbySessionsQuery{
		Latitude:  0,
		Longitude: 0,
		RadiusKm:  radius,
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, response.Sessions, 1)
	require.Equal(t, onBoundary.ID, response.Sessions[0].ID)
}

func Test_ListNearbySessions_Skips_Sessions_Without_Coordinates(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)

	located := sessionAt(0, 0)

	sessionStore := mocks.NewMockSessionStore(ctrl)
	sessionStore.
		EXPECT().
		ListSessions(gomock.Any(), store.Filter{RequireCoordinates: true}).
		Return([]domain.Session{located, {ID: uuid.New()}}, nil)

	handler := NewListNearbySessionsQueryHandler(sessionStore)

	// Act
	response, err := handler.Handle(context.Background(), ListNearbySessionsQuery{
		Latitude:  0,
		Longitude: 0,
		RadiusKm:  10,
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, response.Sessions, 1)
	require.Equal(t, located.ID, response.Sessions[0].ID)
}

func Test_ListNearbySessionsQuery_Validate_Rejects_Out_Of_Range_Coordinates(t *testing.T) {
	require.Error(t, ListNearbySessionsQuery{Latitude: 91, Longitude: 0, RadiusKm: 10}.Validate())
	require.Error(t, ListNearbySessionsQuery{Latitude: 0, Longitude: 181, RadiusKm: 10}.Validate())
	require.Error(t, ListNearbySessionsQuery{Latitude: 0, Longitude: 0, RadiusKm: 0}.Validate())
	require.NoError(t, ListNearbySessionsQuery{Latitude: 45, Longitude: 16, RadiusKm: 10}.Validate())
}
