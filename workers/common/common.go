package common

import (
	"time"
)

// WaitTimeout waits for the done token up to timeout. It returns true
// on timeout, meaning the previous run still holds the token.
func WaitTimeout(done chan struct{}, timeout time.Duration) bool {
	select {
	case <-done:
		return false // completed normally
	case <-time.After(timeout):
		return true // timed out
	}
}
