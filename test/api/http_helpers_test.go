package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/eskrenkovic/session-management-go/internal/modules/session/commands"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type responseAssertion func(*http.Response)

func sendRequest[TReq any, TResp any](
	c *http.Client,
	url string,
	method string,
	req TReq,
	opts ...responseAssertion,
) (TResp, error) {
	var resp TResp

	payload, err := json.Marshal(req)
	if err != nil {
		return resp, err
	}

	httpReq, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		return resp, err
	}

	httpResp, err := c.Do(httpReq)
	if err != nil {
		return resp, err
	}

	for _, opt := range opts {
		opt(httpResp)
	}

	if httpResp.ContentLength > 0 {
		defer func() {
			_ = httpResp.Body.Close()
		}()

		responsePayload, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return resp, err
		}

		if err := json.Unmarshal(responsePayload, &resp); err != nil {
			return resp, err
		}
	}

	return resp, err
}

func createPrivateSession(t *testing.T, creatorID string) domain.SessionDetails {
	command := commands.CreatePrivateSessionCommand{
		Title:     uuid.NewString(),
		Location:  "the abandoned asylum",
		CreatorID: creatorID,
		Category:  "poltergeist",
	}

	details, err := sendRequest[commands.CreatePrivateSessionCommand, domain.SessionDetails](
		fixture.client,
		fmt.Sprintf("%s%s", fixture.baseURL, "/session/create/private"),
		http.MethodPost,
		command,
		func(resp *http.Response) { require.Equal(t, http.StatusOK, resp.StatusCode) },
	)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, details.ID)

	return details
}

func createGroupSession(t *testing.T, maxParticipants int) domain.SessionDetails {
	command := commands.CreateGroupSessionCommand{
		Title:           uuid.NewString(),
		Location:        "the overgrown cemetery",
		CreatorID:       uuid.NewString(),
		MaxParticipants: maxParticipants,
		Category:        "ghost_hunt",
	}

	details, err := sendRequest[commands.CreateGroupSessionCommand, domain.SessionDetails](
		fixture.client,
		fmt.Sprintf("%s%s", fixture.baseURL, "/session/create/group"),
		http.MethodPost,
		command,
		func(resp *http.Response) { require.Equal(t, http.StatusOK, resp.StatusCode) },
	)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, details.ID)

	return details
}

func joinUser(t *testing.T, sessionID uuid.UUID, userID string, wantStatus int) {
	_, err := sendRequest[commands.JoinSessionCommand, any](
		fixture.client,
		fmt.Sprintf("%s/session/activate/user/%s", fixture.baseURL, sessionID),
		http.MethodPost,
		commands.JoinSessionCommand{UserID: userID, Role: "investigator"},
		func(resp *http.Response) { require.Equal(t, wantStatus, resp.StatusCode) },
	)
	require.NoError(t, err)
}

func recordViews(t *testing.T, sessionID uuid.UUID, count int) {
	for i := 0; i < count; i++ {
		_, err := sendRequest[struct{}, any](
			fixture.client,
			fmt.Sprintf("%s/session/%s/view", fixture.baseURL, sessionID),
			http.MethodPost,
			struct{}{},
			func(resp *http.Response) { require.Equal(t, http.StatusOK, resp.StatusCode) },
		)
		require.NoError(t, err)
	}
}

func createQuickSession(t *testing.T) domain.SessionDetails {
	command := commands.CreateQuickSessionCommand{
		Title:     uuid.NewString(),
		Location:  "the old mill",
		CreatorID: uuid.NewString(),
		Category:  "ghost_hunt",
	}

	details, err := sendRequest[commands.CreateQuickSessionCommand, domain.SessionDetails](
		fixture.client,
		fmt.Sprintf("%s%s", fixture.baseURL, "/session/create/quick"),
		http.MethodPost,
		command,
		func(resp *http.Response) { require.Equal(t, http.StatusOK, resp.StatusCode) },
	)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, details.ID)

	return details
}
