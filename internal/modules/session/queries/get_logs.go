package queries

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

type GetLogsQuery struct {
	SessionID uuid.UUID
}

func (q GetLogsQuery) Validate() error {
	if q.SessionID == uuid.Nil {
		return fmt.Errorf("invalid SessionID - '%s'", q.SessionID)
	}

	return nil
}

type LogView struct {
	Timestamp   time.Time      `json:"timestamp"`
	Type        domain.LogType `json:"type"`
	Description string         `json:"description"`
	UserID      string         `json:"userId"`
	Metadata    *string        `json:"metadata,omitempty"`
}

type GetLogsResponse struct {
	Logs []LogView `json:"logs"`
}

func HandleGetLogs(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.WriteBadRequest(w, r, fmt.Errorf("invalid session id - '%s'", chi.URLParam(r, "id")))
		return
	}

	response, err := mediator.Send[GetLogsQuery, GetLogsResponse](
		r.Context(),
		GetLogsQuery{SessionID: sessionID},
	)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type GetLogsQueryHandler struct {
	store store.SessionStore
}

func NewGetLogsQueryHandler(store store.SessionStore) *GetLogsQueryHandler {
	return &GetLogsQueryHandler{store}
}

func (h *GetLogsQueryHandler) Handle(ctx context.Context, request GetLogsQuery) (GetLogsResponse, error) {
	if _, err := h.store.GetSession(ctx, request.SessionID); err != nil {
		return GetLogsResponse{}, queryError(err)
	}

	logs, err := h.store.ListLogs(ctx, request.SessionID)
	if err != nil {
		return GetLogsResponse{}, queryError(err)
	}

	views := core.Map(logs, func(entry domain.LogEntry) LogView {
		return LogView{
			Timestamp:   entry.Timestamp,
			Type:        entry.Type,
			Description: entry.Description,
			UserID:      entry.UserID,
			Metadata:    entry.Metadata,
		}
	})

	return GetLogsResponse{Logs: views}, nil
}
