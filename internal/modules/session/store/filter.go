package store

import "github.com/eskrenkovic/session-management-go/internal/modules/session/domain"

type Order string

const (
	OrderNone        Order = ""
	OrderCreatedDesc Order = "created_desc"
	OrderUpdatedDesc Order = "updated_desc"
	OrderEndedDesc   Order = "ended_desc"
	OrderPopularity  Order = "popularity"
)

// Filter describes one discovery predicate. Zero value selects every
// session with no particular order.
type Filter struct {
	Statuses  []domain.SessionStatus
	Category  *domain.Category
	IsPrivate *bool

	// RequireCoordinates keeps only sessions with both latitude and
	// longitude set.
	RequireCoordinates bool

	// InvolvedUserID keeps sessions the user created or participates
	// in.
	InvolvedUserID string

	// OnlyWithCapacity keeps uncapped sessions and sessions whose
	// joined count is below the maximum.
	OnlyWithCapacity bool

	OrderBy Order
	Limit   int
}
