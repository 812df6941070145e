package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atakhatri/UNO-sub000/uno/game"
)

// For a fixed direction and skip, NextIndex must permute the seats: every
// seat maps to a distinct seat.
func TestNextIndexIsBijection(t *testing.T) {
	for playerCount := 2; playerCount <= 4; playerCount++ {
		for _, direction := range []int{1, -1} {
			for skip := 1; skip <= 2; skip++ {
				seen := make(map[int]bool)
				for current := 0; current < playerCount; current++ {
					next := game.NextIndex(current, direction, playerCount, skip)
					require.GreaterOrEqual(t, next, 0)
					require.Less(t, next, playerCount)
					seen[next] = true
				}
				assert.Len(t, seen, playerCount,
					"n=%d direction=%d skip=%d", playerCount, direction, skip)
			}
		}
	}
}

func TestNextIndexCyclesBackToStart(t *testing.T) {
	for playerCount := 2; playerCount <= 4; playerCount++ {
		for _, direction := range []int{1, -1} {
			current := 0
			for i := 0; i < playerCount; i++ {
				current = game.NextIndex(current, direction, playerCount, 1)
			}
			assert.Equal(t, 0, current)
		}
	}
}

func TestNextIndexSkips(t *testing.T) {
	assert.Equal(t, 2, game.NextIndex(0, 1, 3, 2))
	assert.Equal(t, 1, game.NextIndex(0, -1, 3, 2))
	assert.Equal(t, 3, game.NextIndex(1, -1, 4, 2))
	// Skipping two seats in a two-player game lands back on the actor.
	assert.Equal(t, 0, game.NextIndex(0, 1, 2, 2))
	assert.Equal(t, 0, game.NextIndex(0, -1, 2, 2))
}
