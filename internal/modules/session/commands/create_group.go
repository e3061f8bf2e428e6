package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/domain"
	"github.com/eskrenkovic/session-management-go/internal/modules/session/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/google/uuid"
)

type EquipmentItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsMandatory bool   `json:"isMandatory"`
	Quantity    int    `json:"quantity"`
}

type CreateGroupSessionCommand struct {
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Location          string          `json:"location"`
	CreatorID         string          `json:"creatorId"`
	MaxParticipants   int             `json:"maxParticipants"`
	RequiredEquipment []EquipmentItem `json:"requiredEquipment"`
	Category          string          `json:"category"`
	Latitude          *float64        `json:"latitude"`
	Longitude         *float64        `json:"longitude"`
}

func (c CreateGroupSessionCommand) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("invalid Title - '%s'", c.Title)
	}

	if c.Location == "" {
		return fmt.Errorf("invalid Location - '%s'", c.Location)
	}

	if c.CreatorID == "" {
		return fmt.Errorf("invalid CreatorID - '%s'", c.CreatorID)
	}

	if c.MaxParticipants < 0 {
		return fmt.Errorf("invalid MaxParticipants - %d", c.MaxParticipants)
	}

	for _, item := range c.RequiredEquipment {
		if item.Name == "" {
			return fmt.Errorf("invalid equipment Name - '%s'", item.Name)
		}

		if item.Quantity < 0 {
			return fmt.Errorf("invalid equipment Quantity - %d", item.Quantity)
		}
	}

	return nil
}

func HandleCreateGroupSession(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CreateGroupSessionCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	response, err := mediator.Send[CreateGroupSessionCommand, domain.SessionDetails](r.Context(), command)
	if err != nil {
		core.WriteCommandError(w, r, err)
		return
	}

	core.WriteOK(w, r, response)
}

type CreateGroupSessionCommandHandler struct {
	store store.SessionStore
	clock core.Clock
}

func NewCreateGroupSessionCommandHandler(store store.SessionStore, clock core.Clock) *CreateGroupSessionCommandHandler {
	return &CreateGroupSessionCommandHandler{store, clock}
}

func (h *CreateGroupSessionCommandHandler) Handle(
	ctx context.Context,
	request CreateGroupSessionCommand,
) (domain.SessionDetails, error) {
	now := h.clock.Now()

	session := domain.Session{
		ID:              uuid.New(),
		Title:           request.Title,
		Description:     request.Description,
		Location:        request.Location,
		Latitude:        request.Latitude,
		Longitude:       request.Longitude,
		CreatorID:       request.CreatorID,
		Type:            domain.TypeGroup,
		Status:          domain.StatusCreated,
		MaxParticipants: request.MaxParticipants,
		Category:        domain.ParseCategory(request.Category),
		Difficulty:      domain.DifficultyBeginner,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := h.store.CreateSession(ctx, session); err != nil {
		return domain.SessionDetails{}, commandError(err)
	}

	if len(request.RequiredEquipment) > 0 {
		equipment := core.Map(request.RequiredEquipment, func(item EquipmentItem) domain.RequiredEquipment {
			return domain.RequiredEquipment{
				ID:          uuid.New(),
				SessionID:   session.ID,
				Name:        item.Name,
				Description: item.Description,
				IsMandatory: item.IsMandatory,
				Quantity:    item.Quantity,
			}
		})

		if err := h.store.AppendEquipment(ctx, session.ID, equipment); err != nil {
			return domain.SessionDetails{}, commandError(err)
		}
	}

	return domain.NewSessionDetails(session), nil
}
