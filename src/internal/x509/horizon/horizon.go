// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package horizon computes how far away the 32-bit time overflow is.
//
// Certificates handed to older clients must not expire past the moment a
// signed 32-bit seconds-since-epoch counter wraps (2038-01-19 03:14:07 UTC).
// The tool keeps one day of margin and measures against 18 January 2038.
package horizon

import (
	"math"
	"time"
)

// Date is the last day certificate validity may reach.
var Date = time.Date(2038, time.January, 18, 0, 0, 0, 0, time.UTC)

// DaysUntil returns the number of whole days between now and Date. It is
// zero once Date has passed.
func DaysUntil(now time.Time) int {
	d := Date.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}

// YearsUntil returns the distance between now and Date in years, rounded
// to two decimals.
func YearsUntil(now time.Time) float64 {
	years := float64(DaysUntil(now)) / 365.25
	return math.Round(years*100) / 100
}
