/*
 * Copyright (C) 2026 Foldkit Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package timings defines the polling cadence shared by consumers of this
// module and a poller honouring it.
package timings

import "time"

const (
	// Period is the interval between two polling ticks.
	Period = 500 * time.Millisecond
	// TotalDuration is the overall polling budget.
	TotalDuration = time.Hour
)

// Ticks returns the number of whole polling intervals fitting in the budget.
// Period and TotalDuration share time.Duration's fixed-point representation
// and divide without remainder.
func Ticks() int64 {
	return int64(TotalDuration / Period)
}
