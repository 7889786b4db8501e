package bayes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMajorityTailMonotoneInWinnerCount(t *testing.T) {
	kl := int64(50)
	prev := 1.0
	for kw := int64(0); kw <= 200; kw++ {
		tail := MajorityTail(kw, kl)
		if tail > prev+1e-12 {
			t.Fatalf("MajorityTail not non-increasing in kw at kw=%d: %v > %v", kw, tail, prev)
		}
		prev = tail
	}
}

func TestMajorityTailSymmetric(t *testing.T) {
	// with an equal split, the posterior mass above and below 1/2 is equal
	tail := MajorityTail(50, 50)
	assert.InDelta(t, 0.5, tail, 1e-9)
}

func TestMajorityTailConfident(t *testing.T) {
	// a strong winner lead should drive the tail probability close to 0
	tail := MajorityTail(175, 25)
	assert.Less(t, tail, 0.01)
}

func TestPoolTailBounds(t *testing.T) {
	tail := PoolTail(175, 25, 1000)
	assert.GreaterOrEqual(t, tail, 0.0)
	assert.LessOrEqual(t, tail, 1.0)
}

func TestPoolTailMonotoneInWinnerCount(t *testing.T) {
	kl := int64(25)
	pool := int64(1000)
	prev := 1.0
	for kw := int64(0); kw <= 175; kw++ {
		tail := PoolTail(kw, kl, pool)
		if tail > prev+1e-9 {
			t.Fatalf("PoolTail not non-increasing in kw at kw=%d: %v > %v", kw, tail, prev)
		}
		prev = tail
	}
}

func TestPoolTailStrongLeadIsSmall(t *testing.T) {
	tail := PoolTail(175, 25, 1000)
	assert.Less(t, tail, 0.05)
}
