package domain

import "github.com/google/uuid"

type RequiredEquipment struct {
	ID          uuid.UUID `db:"id"`
	SessionID   uuid.UUID `db:"session_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	IsMandatory bool      `db:"is_mandatory"`
	Quantity    int       `db:"quantity"`
}
