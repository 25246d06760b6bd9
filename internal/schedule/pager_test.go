package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPager_RetreatAtLowerBoundIsNoOp(t *testing.T) {
	p := NewPager(0)

	assert.False(t, p.CanRetreat())
	assert.Equal(t, 0, p.Retreat())
	assert.Equal(t, 0, p.Offset())
}

func TestPager_AdvanceNeverExceedsHorizon(t *testing.T) {
	p := NewPager(0)

	for i := 0; i < 5; i++ {
		p.Advance()
	}

	assert.Equal(t, 3, p.Offset())
	assert.False(t, p.CanAdvance())
}

func TestPager_ReachableOffsets(t *testing.T) {
	// With the configured horizon of 10 and window of 7, the only
	// reachable offsets are 0 and 3.
	p := NewPager(0)
	assert.Equal(t, 3, p.Advance())
	assert.Equal(t, 3, p.Advance())
	assert.Equal(t, 0, p.Retreat())
	assert.Equal(t, 0, p.Retreat())
}

func TestClampOffset(t *testing.T) {
	assert.Equal(t, 0, ClampOffset(-4))
	assert.Equal(t, 2, ClampOffset(2))
	assert.Equal(t, 3, ClampOffset(11))
}
