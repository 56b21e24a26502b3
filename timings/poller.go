/*
 * Copyright (C) 2026 Foldkit Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package timings

import (
	"context"
	"time"

	"go.uber.org/atomic"

	"github.com/foldkit/foldkit/commonerrors"
)

// Poller calls a function at a fixed period until an overall budget is spent.
type Poller struct {
	period time.Duration
	budget time.Duration
	ticks  *atomic.Int64
}

// NewPoller returns a poller running at the default cadence (Period within TotalDuration).
func NewPoller() *Poller {
	return NewPollerWithCadence(Period, TotalDuration)
}

// NewPollerWithCadence returns a poller calling its function every `period` until `budget` is spent.
func NewPollerWithCadence(period, budget time.Duration) *Poller {
	return &Poller{
		period: period,
		budget: budget,
		ticks:  atomic.NewInt64(0),
	}
}

// Ticks returns how many times the polled function has run. It is safe to call
// from another goroutine while Poll is running.
func (p *Poller) Ticks() int64 {
	return p.ticks.Load()
}

// Poll calls f every period until the budget is spent or the context is cancelled.
// A spent budget is a normal return; cancellation is reported as ErrCancelled.
func (p *Poller) Poll(ctx context.Context, f func(time.Time)) error {
	if f == nil {
		return commonerrors.UndefinedParameter("polled function")
	}
	if p.period <= 0 || p.budget < p.period {
		return commonerrors.Newf(commonerrors.ErrInvalid, "cadence [%v every %v] allows no tick", p.budget, p.period)
	}
	ticker := time.NewTicker(p.period)
	defer ticker.Stop()
	budget := time.NewTimer(p.budget)
	defer budget.Stop()
	for {
		select {
		case <-ctx.Done():
			return commonerrors.New(commonerrors.ErrCancelled, "polling interrupted")
		case <-budget.C:
			return nil
		case v := <-ticker.C:
			f(v)
			p.ticks.Inc()
		}
	}
}
