package queries

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/geo"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
)

const defaultRadiusKm = 10

type ListNearbySessionsQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

func (q ListNearbySessionsQuery) Validate() error {
	if q.Latitude < -90 || q.Latitude > 90 {
		return fmt.Errorf("invalid Latitude - %f", q.Latitude)
	}

	if q.Longitude < -180 || q.Longitude > 180 {
		return fmt.Errorf("invalid Longitude - %f", q.Longitude)
	}

	if q.RadiusKm <= 0 {
		return fmt.Errorf("invalid RadiusKm - %f", q.RadiusKm)
	}

	return nil
}

type NearbySession struct {
	domain.SessionDetails
	DistanceKm float64 `json:"distanceKm"`
}

type NearbySessionsResponse struct {
	Sessions []NearbySession `json:"sessions"`
}

func HandleListNearbySessions(w http.ResponseWriter, r *http.Request) {
	lat, err := queryParamFloat(r, "lat")
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	lon, err := queryParamFloat(r, "lon")
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	radius := float64(defaultRadiusKm)
	if raw := r.URL.Query().Get("radiusKm"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			core.WriteBadRequest(w, r, fmt.Errorf("invalid format for query param 'radiusKm'"))
			return
		}
	}

	query := ListNearbySessionsQuery{Latitude: lat, Longitude: lon, RadiusKm: radius}

	response, err := mediator.Send[ListNearbySessionsQuery, NearbySessionsResponse](r.Context(), query)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

func queryParamFloat(r *http.Request, name string) (float64, error) {
	raw, found := r.URL.Query()[name]
	if !found {
		return 0, fmt.Errorf("missing required query param '%s'", name)
	}

	val, err := strconv.ParseFloat(raw[0], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid format for query param '%s'", name)
	}

	return val, nil
}

type ListNearbySessionsQueryHandler struct {
	store store.SessionStore
}

func NewListNearbySessionsQueryHandler(store store.SessionStore) *ListNearbySessionsQueryHandler {
	return &ListNearbySessionsQueryHandler{store}
}

// Handle fetches every session carrying coordinates and runs the
// great-circle filter in process. The radius boundary is inclusive.
func (h *ListNearbySessionsQueryHandler) Handle(
	ctx context.Context,
	request ListNearbySessionsQuery,
) (NearbySessionsResponse, error) {
	sessions, err := h.store.ListSessions(ctx, store.Filter{RequireCoordinates: true})
	if err != nil {
		return NearbySessionsResponse{}, queryError(err)
	}

	nearby := make([]NearbySession, 0, len(sessions))
	for _, session := range sessions {
		if !session.HasCoordinates() {
			continue
		}

		distance := geo.DistanceKm(request.Latitude, request.Longitude, *session.Latitude, *session.Longitude)
		if distance > request.RadiusKm {
			continue
		}

		nearby = append(nearby, NearbySession{
			SessionDetails: domain.NewSessionDetails(session),
			DistanceKm:     distance,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return NearbySessionsResponse{Sessions: nearby}, nil
}
