// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package simulate stands in for the remote booking backend Artistly does not have.

Every "remote" operation (listing submissions, approving, submitting a
profile) waits for a configured delay and may fail at a configured rate, so
clients see realistic pending and error states.

A cancelled context abandons the wait and the caller must not apply its
mutation.
*/
package simulate

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"
)

// ErrRemoteFailure is returned when the simulated call is rolled as a failure.
var ErrRemoteFailure = errors.New("simulate: remote call failed")

// Call describes one kind of simulated remote call.
type Call struct {
	// Delay is how long the call takes. Zero returns immediately.
	Delay time.Duration

	// FailureRate is the probability in [0, 1] that the call fails.
	FailureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// New builds a [Call]. A zero failure rate never fails.
func New(delay time.Duration, failureRate float64) *Call {
	return &Call{
		Delay:       delay,
		FailureRate: failureRate,
		rng:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
	}
}

// Instant is a call without delay or failures, used in tests and tooling.
func Instant() *Call {
	return New(0, 0)
}

// Do waits for the delay and then reports the simulated outcome.
//
// # Returns
//   - ctx.Err() when the context ends first.
//   - [ErrRemoteFailure] when the failure roll hits.
//   - nil otherwise.
func (c *Call) Do(ctx context.Context) error {
	if c.Delay > 0 {
		timer := time.NewTimer(c.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	if c.fails() {
		return ErrRemoteFailure
	}
	return nil
}

func (c *Call) fails() bool {
	if c.FailureRate <= 0 {
		return false
	}
	if c.FailureRate >= 1 {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Float64() < c.FailureRate
}
