package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitTimeout(t *testing.T) {
	done := make(chan struct{}, 1)

	// nothing signaled yet, the slot is taken
	assert.True(t, WaitTimeout(done, 10*time.Millisecond))

	// slot free, acquire succeeds
	done <- struct{}{}
	assert.False(t, WaitTimeout(done, 10*time.Millisecond))

	// and it is taken again until released
	assert.True(t, WaitTimeout(done, 10*time.Millisecond))
}
