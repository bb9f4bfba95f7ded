package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusPreparing, true},
		{StatusPreparing, StatusReady, true},
		{StatusReady, StatusDelivered, true},

		// no skipping steps, no going backwards
		{StatusPending, StatusPreparing, false},
		{StatusPending, StatusReady, false},
		{StatusConfirmed, StatusPending, false},
		{StatusReady, StatusConfirmed, false},

		// cancellation from any non-terminal state
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusPreparing, StatusCancelled, true},
		{StatusReady, StatusCancelled, true},

		// terminal states never reopen
		{StatusDelivered, StatusConfirmed, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusDeleted, StatusPending, false},
		{StatusDeleted, StatusDeleted, false},

		// soft-delete is allowed from anywhere else
		{StatusPending, StatusDeleted, true},
		{StatusDelivered, StatusDeleted, true},
		{StatusCancelled, StatusDeleted, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestParseOrderStatus(t *testing.T) {
	s, err := ParseOrderStatus("preparing")
	assert.NoError(t, err)
	assert.Equal(t, StatusPreparing, s)

	_, err = ParseOrderStatus("shipped")
	assert.Error(t, err)
}
