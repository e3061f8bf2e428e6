package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC)

func Test_Activate_From_Created_Stamps_Actual_Start_Time(t *testing.T) {
	// Arrange
	session := Session{Status: StatusCreated}

	// Act
	err := session.Activate(testTime)

	// Assert
	require.NoError(t, err)
	require.Equal(t, StatusActive, session.Status)
	require.NotNil(t, session.ActualStartTime)
	require.Equal(t, testTime, *session.ActualStartTime)
	require.Equal(t, testTime, session.UpdatedAt)
}

func Test_Activate_From_Scheduled_Succeeds(t *testing.T) {
	session := Session{Status: StatusScheduled}

	err := session.Activate(testTime)

	require.NoError(t, err)
	require.Equal(t, StatusActive, session.Status)
}

func Test_Activate_Rejected_From_Invalid_States(t *testing.T) {
	for _, status := range []SessionStatus{StatusActive, StatusPaused, StatusCompleted, StatusCancelled} {
		earlier := testTime.Add(-time.Hour)
		session := Session{Status: status, ActualStartTime: &earlier}

		err := session.Activate(testTime)

		require.ErrorIs(t, err, ErrInvalidTransition)
		require.Equal(t, status, session.Status)
		require.Equal(t, earlier, *session.ActualStartTime)
	}
}

func Test_Pause_Only_Allowed_From_Active(t *testing.T) {
	session := Session{Status: StatusActive}
	require.NoError(t, session.Pause(testTime))
	require.Equal(t, StatusPaused, session.Status)

	for _, status := range []SessionStatus{StatusCreated, StatusScheduled, StatusPaused, StatusCompleted, StatusCancelled} {
		session := Session{Status: status}
		require.ErrorIs(t, session.Pause(testTime), ErrInvalidTransition)
	}
}

func Test_Complete_Stamps_Actual_End_Time(t *testing.T) {
	for _, status := range []SessionStatus{StatusActive, StatusPaused} {
		session := Session{Status: status}

		err := session.Complete(testTime)

		require.NoError(t, err)
		require.Equal(t, StatusCompleted, session.Status)
		require.Equal(t, testTime, *session.ActualEndTime)
	}
}

func Test_Cancel_Allowed_From_Any_Non_Terminal_State(t *testing.T) {
	for _, status := range []SessionStatus{StatusCreated, StatusScheduled, StatusActive, StatusPaused} {
		session := Session{Status: status}
		require.NoError(t, session.Cancel(testTime))
		require.Equal(t, StatusCancelled, session.Status)
	}

	for _, status := range []SessionStatus{StatusCompleted, StatusCancelled} {
		session := Session{Status: status}
		require.ErrorIs(t, session.Cancel(testTime), ErrInvalidTransition)
	}
}

func Test_SetSchedule_Derives_End_From_Duration(t *testing.T) {
	session := Session{Status: StatusCreated}
	start := time.Date(2025, 3, 7, 21, 30, 0, 0, time.UTC)

	err := session.SetSchedule(start, 90, testTime)

	require.NoError(t, err)
	require.Equal(t, start, *session.ScheduledStartTime)
	require.Equal(t, start.Add(90*time.Minute), *session.ScheduledEndTime)
}

func Test_SetSchedule_Rejected_On_Terminal_States(t *testing.T) {
	for _, status := range []SessionStatus{StatusCompleted, StatusCancelled} {
		session := Session{Status: status}
		err := session.SetSchedule(testTime, 60, testTime)
		require.ErrorIs(t, err, ErrInvalidTransition)
		require.Nil(t, session.ScheduledStartTime)
	}
}
