package domain

import (
	"time"

	"github.com/google/uuid"
)

type LogType string

const (
	LogParticipantJoined LogType = "participant_joined"
	LogParticipantLeft   LogType = "participant_left"
	LogActivityRecorded  LogType = "activity_recorded"
	LogEquipmentReading  LogType = "equipment_reading"
	LogEVPRecorded       LogType = "evp_recorded"
	LogPhotoTaken        LogType = "photo_taken"
	LogTemperatureChange LogType = "temperature_change"
	LogEMFSpike          LogType = "emf_spike"
	LogNote              LogType = "note"
)

type LogEntry struct {
	ID          uuid.UUID `db:"id"`
	SessionID   uuid.UUID `db:"session_id"`
	UserID      string    `db:"user_id"`
	Timestamp   time.Time `db:"timestamp"`
	Type        LogType   `db:"type"`
	Description string    `db:"description"`
	Metadata    *string   `db:"metadata"`
}
