package services_test

import (
	"testing"

	"djurdata-ai/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestNextStateFlagIncrementsCount(t *testing.T) {
	state := services.ViolationState{Status: services.StatusClean}

	state = services.NextState(state, services.EventFlag, 3)
	assert.Equal(t, services.StatusFlagged, state.Status)
	assert.Equal(t, 1, state.Count)

	state = services.NextState(state, services.EventFlag, 3)
	assert.Equal(t, services.StatusFlagged, state.Status)
	assert.Equal(t, 2, state.Count)
}

func TestNextStateBlocksAtThreshold(t *testing.T) {
	state := services.ViolationState{Status: services.StatusFlagged, Count: 2}

	state = services.NextState(state, services.EventFlag, 3)
	assert.Equal(t, services.StatusBlocked, state.Status)
	assert.Equal(t, 3, state.Count)
}

func TestNextStateFlagOnBlockedIsNoop(t *testing.T) {
	state := services.ViolationState{Status: services.StatusBlocked, Count: 3}

	next := services.NextState(state, services.EventFlag, 3)
	assert.Equal(t, state, next)
}

// An unblock keeps the historical count; the user returns to flagged
// standing, never to clean.
func TestNextStateUnblockKeepsCount(t *testing.T) {
	state := services.ViolationState{Status: services.StatusBlocked, Count: 3}

	state = services.NextState(state, services.EventUnblock, 3)
	assert.Equal(t, services.StatusFlagged, state.Status)
	assert.Equal(t, 3, state.Count)
}

func TestNextStateUnblockOnUnblockedIsNoop(t *testing.T) {
	state := services.ViolationState{Status: services.StatusFlagged, Count: 2}

	next := services.NextState(state, services.EventUnblock, 3)
	assert.Equal(t, state, next)
}

func TestNextStateCustomThreshold(t *testing.T) {
	state := services.ViolationState{Status: services.StatusClean}

	state = services.NextState(state, services.EventFlag, 1)
	assert.Equal(t, services.StatusBlocked, state.Status)
	assert.Equal(t, 1, state.Count)
}
