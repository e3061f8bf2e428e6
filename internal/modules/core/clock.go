package core

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/eskrenkovic/session-management-go/internal/modules/core Clock

// Clock abstracts time.Now so handlers that stamp transition
// timestamps can be tested against a fixed instant.
type Clock interface {
	Now() time.Time
}

type DefaultClock struct{}

func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}
