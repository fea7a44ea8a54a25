package throttle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGateAllowsFirstEvent(t *testing.T) {
	g := NewGate()
	assert.True(t, g.Allow(time.Now()))
}

func TestGateThrottlesWithinWindowThenAllowsAfter(t *testing.T) {
	g := NewGate()
	t0 := time.Now()
	assert.True(t, g.Allow(t0))

	t1 := t0.Add(3 * time.Second)
	assert.False(t, g.Allow(t1))

	t2 := t0.Add(6 * time.Second)
	assert.True(t, g.Allow(t2))
}
