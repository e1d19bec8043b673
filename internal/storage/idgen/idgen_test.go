package idgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextIsStrictlyIncreasingWithinOneTick(t *testing.T) {
	frozen := time.UnixMilli(1700000000000)
	gen := NewWithClock(func() time.Time { return frozen })

	seen := make(map[int64]bool)
	var prev int64
	for i := 0; i < 100; i++ {
		id := gen.Next()
		assert.Greater(t, id, prev)
		assert.False(t, seen[id], "id %d allocated twice", id)
		seen[id] = true
		prev = id
	}
}

func TestNextSurvivesClockGoingBackwards(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	gen := NewWithClock(func() time.Time { return now })

	first := gen.Next()
	now = now.Add(-time.Hour)
	second := gen.Next()

	assert.Greater(t, second, first)
}

func TestNextFollowsAdvancingClock(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	gen := NewWithClock(func() time.Time { return now })

	first := gen.Next()
	now = now.Add(time.Second)
	second := gen.Next()

	assert.Equal(t, first+1000, second)
}
