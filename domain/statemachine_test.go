package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionHappyPath(t *testing.T) {
	assert.True(t, CanTransition(StatusOpen, StatusPreparing))
	assert.True(t, CanTransition(StatusPreparing, StatusReady))
	assert.True(t, CanTransition(StatusReady, StatusServed))
	assert.True(t, CanTransition(StatusReady, StatusOutForDelivery))
	assert.True(t, CanTransition(StatusOutForDelivery, StatusCompleted))
	assert.True(t, CanTransition(StatusServed, StatusCompleted))
}

func TestCanTransitionShortcuts(t *testing.T) {
	// OPEN boleh langsung ditutup atau dibatalkan
	assert.True(t, CanTransition(StatusOpen, StatusCompleted))
	assert.True(t, CanTransition(StatusOpen, StatusCancelled))
	// Koreksi dapur: COMPLETED boleh dibuka kembali ke PREPARING
	assert.True(t, CanTransition(StatusCompleted, StatusPreparing))
}

func TestCanTransitionIllegal(t *testing.T) {
	assert.False(t, CanTransition(StatusOpen, StatusServed))
	assert.False(t, CanTransition(StatusOpen, StatusReady))
	assert.False(t, CanTransition(StatusPreparing, StatusCompleted))
	assert.False(t, CanTransition(StatusCancelled, StatusOpen))
	assert.False(t, CanTransition(StatusCancelled, StatusPreparing))
	assert.False(t, CanTransition(StatusServed, StatusReady))
}

func TestCanTransitionSelf(t *testing.T) {
	for _, status := range []string{StatusOpen, StatusPreparing, StatusCompleted, StatusCancelled} {
		assert.True(t, CanTransition(status, status), status)
	}
}

func TestNextStatus(t *testing.T) {
	assert.Equal(t, StatusPreparing, NextStatus(StatusOpen))
	assert.Equal(t, StatusReady, NextStatus(StatusPreparing))
	assert.Equal(t, "", NextStatus(StatusCancelled))
}

func TestIsFinalStatus(t *testing.T) {
	assert.True(t, IsFinalStatus(StatusCompleted))
	assert.True(t, IsFinalStatus(StatusCancelled))
	assert.False(t, IsFinalStatus(StatusOpen))
	assert.False(t, IsFinalStatus(StatusServed))
}
