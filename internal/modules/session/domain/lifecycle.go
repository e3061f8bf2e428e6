package domain

import (
	"fmt"
	"time"
)

// Lifecycle: created -> scheduled -> active -> paused -> completed,
// with cancelled reachable from any non-terminal state. Scheduled
// sessions are born in scheduled, every other creation mode in
// created.

// Activate moves a created or scheduled session to active and stamps
// the actual start time. Any other starting state is rejected - an
// already active session must not have its start time overwritten.
func (s *Session) Activate(now time.Time) error {
	if s.Status != StatusCreated && s.Status != StatusScheduled {
		return transitionError(s.Status, StatusActive)
	}

	s.Status = StatusActive
	s.ActualStartTime = &now
	s.UpdatedAt = now
	return nil
}

// Pause suspends an active session.
func (s *Session) Pause(now time.Time) error {
	if s.Status != StatusActive {
		return transitionError(s.Status, StatusPaused)
	}

	s.Status = StatusPaused
	s.UpdatedAt = now
	return nil
}

// Complete finishes an active or paused session and stamps the actual
// end time.
func (s *Session) Complete(now time.Time) error {
	if s.Status != StatusActive && s.Status != StatusPaused {
		return transitionError(s.Status, StatusCompleted)
	}

	s.Status = StatusCompleted
	s.ActualEndTime = &now
	s.UpdatedAt = now
	return nil
}

// Cancel aborts any non-terminal session.
func (s *Session) Cancel(now time.Time) error {
	if s.Status.Terminal() {
		return transitionError(s.Status, StatusCancelled)
	}

	s.Status = StatusCancelled
	s.UpdatedAt = now
	return nil
}

// SetSchedule sets the scheduled window from a start time and a
// duration in minutes. Allowed in any non-terminal state.
func (s *Session) SetSchedule(start time.Time, durationMinutes int, now time.Time) error {
	if s.Status.Terminal() {
		return fmt.Errorf("%w: cannot schedule session in status '%s'", ErrInvalidTransition, s.Status)
	}

	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	s.ScheduledStartTime = &start
	s.ScheduledEndTime = &end
	s.UpdatedAt = now
	return nil
}

func transitionError(from, to SessionStatus) error {
	return fmt.Errorf("%w: '%s' -> '%s'", ErrInvalidTransition, from, to)
}
