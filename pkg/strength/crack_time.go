// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"fmt"
	"math"
)

// Attack scenarios, same labels and guess rates zxcvbn uses.
const (
	OnlineThrottling   = "online_throttling_100_per_hour"
	OnlineNoThrottling = "online_no_throttling_10_per_second"
	OfflineSlowHashing = "offline_slow_hashing_1e4_per_second"
	OfflineFastHashing = "offline_fast_hashing_1e10_per_second"
)

var guessesPerSecond = map[string]float64{
	OnlineThrottling:   100.0 / 3600,
	OnlineNoThrottling: 10,
	OfflineSlowHashing: 1e4,
	OfflineFastHashing: 1e10,
}

const (
	minute  = 60
	hour    = minute * 60
	day     = hour * 24
	month   = day * 31
	year    = month * 12
	century = year * 100
)

// crackTimes on average an attacker has to go through half of the search space. Entropy is in bits.
func crackTimes(entropy float64) map[string]string {
	guesses := 0.5 * math.Pow(2, entropy)
	times := make(map[string]string, len(guessesPerSecond))
	for scenario, rate := range guessesPerSecond {
		times[scenario] = displayTime(guesses / rate)
	}

	return times
}

func displayTime(seconds float64) string {
	var base float64
	var unit string

	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < minute:
		base, unit = math.Round(seconds), "second"
	case seconds < hour:
		base, unit = math.Round(seconds/minute), "minute"
	case seconds < day:
		base, unit = math.Round(seconds/hour), "hour"
	case seconds < month:
		base, unit = math.Round(seconds/day), "day"
	case seconds < year:
		base, unit = math.Round(seconds/month), "month"
	case seconds < century:
		base, unit = math.Round(seconds/year), "year"
	default:
		return "centuries"
	}

	if base != 1 {
		unit += "s"
	}

	return fmt.Sprintf("%.0f %s", base, unit)
}
