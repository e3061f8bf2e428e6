package domain

import (
	"time"

	"github.com/google/uuid"
)

type ParticipantRole string

const (
	RoleLeader           ParticipantRole = "leader"
	RoleInvestigator     ParticipantRole = "investigator"
	RoleObserver         ParticipantRole = "observer"
	RoleEquipmentManager ParticipantRole = "equipment_manager"
	RoleEVPSpecialist    ParticipantRole = "evp_specialist"
	RoleMedium           ParticipantRole = "medium"
)

var participantRoles = map[ParticipantRole]struct{}{
	RoleLeader:           {},
	RoleInvestigator:     {},
	RoleObserver:         {},
	RoleEquipmentManager: {},
	RoleEVPSpecialist:    {},
	RoleMedium:           {},
}

// ParseRole maps free text onto the closed role set, defaulting to
// investigator for anything unrecognized.
func ParseRole(raw string) ParticipantRole {
	if _, ok := participantRoles[ParticipantRole(raw)]; ok {
		return ParticipantRole(raw)
	}

	return RoleInvestigator
}

type ParticipantStatus string

const (
	ParticipantInvited ParticipantStatus = "invited"
	ParticipantJoined  ParticipantStatus = "joined"
	ParticipantLeft    ParticipantStatus = "left"
	ParticipantKicked  ParticipantStatus = "kicked"
	ParticipantBanned  ParticipantStatus = "banned"
)

type Participant struct {
	ID        uuid.UUID         `db:"id"`
	SessionID uuid.UUID         `db:"session_id"`
	UserID    string            `db:"user_id"`
	Role      ParticipantRole   `db:"role"`
	Status    ParticipantStatus `db:"status"`
	JoinedAt  time.Time         `db:"joined_at"`
	LeftAt    *time.Time        `db:"left_at"`
}
