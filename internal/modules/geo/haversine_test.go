package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_DistanceKm_One_Degree_Of_Longitude_At_Equator(t *testing.T) {
	distance := DistanceKm(0, 0, 0, 1)
	require.InDelta(t, 111.19, distance, 0.5)
}

func Test_DistanceKm_Identical_Points_Is_Zero(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{45.815, 15.9819},
		{-33.8688, 151.2093},
		{90, 0},
	}

	for _, p := range points {
		require.Zero(t, DistanceKm(p[0], p[1], p[0], p[1]))
	}
}

func Test_DistanceKm_Is_Symmetric(t *testing.T) {
	forward := DistanceKm(45.815, 15.9819, 48.2082, 16.3738)
	backward := DistanceKm(48.2082, 16.3738, 45.815, 15.9819)

	require.InDelta(t, forward, backward, 1e-9)
}

func Test_DistanceKm_Known_Distance(t *testing.T) {
	// Zagreb -> Vienna, roughly 268 km.
	distance := DistanceKm(45.815, 15.9819, 48.2082, 16.3738)
	require.InDelta(t, 268, distance, 5)
}
