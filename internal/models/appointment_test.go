package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{StatusScheduled, StatusScheduled, true},
		{StatusScheduled, StatusInProgress, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusCompleted, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusInProgress, StatusScheduled, false},
		{StatusCompleted, StatusCompleted, true},
		{StatusCompleted, StatusScheduled, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCancelled, StatusCancelled, true},
		{StatusCancelled, StatusScheduled, false},
		{StatusCancelled, StatusCompleted, false},
	}

	for _, tc := range cases {
		appt := Appointment{Status: tc.from}
		assert.Equal(t, tc.allowed, appt.CanTransitionTo(tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}
