// Package timeutil holds the wall-clock helpers used by the game round timer.
package timeutil

import (
	"fmt"
	"time"
)

// Now is the clock used everywhere round timing matters. Tests swap it
// out to drive expiry without sleeping.
var Now = time.Now

// RoundDuration converts the duration a player picked (in minutes) to a
// time.Duration.
func RoundDuration(minutes int) time.Duration {
	return time.Duration(minutes) * time.Minute
}

// Remaining returns how much of the round budget is left. Negative
// results are clamped to zero.
func Remaining(startedAt time.Time, budget time.Duration) time.Duration {
	left := budget - Now().Sub(startedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether the round budget has been fully spent.
func Expired(startedAt time.Time, budget time.Duration) bool {
	return Now().Sub(startedAt) >= budget
}

// DaysHoursMinutes formats a duration as "Nd Nh Nm" with zero units elided,
// the way the score report shows remaining time. Sub-minute leftovers round
// up so a running round never reads "0m" while time remains.
func DaysHoursMinutes(d time.Duration) string {
	if d <= 0 {
		return "0m"
	}

	total := int64((d + time.Minute - 1) / time.Minute)
	days := total / (24 * 60)
	hours := (total % (24 * 60)) / 60
	minutes := total % 60

	out := ""
	if days > 0 {
		out += fmt.Sprintf("%dd ", days)
	}
	if hours > 0 {
		out += fmt.Sprintf("%dh ", hours)
	}
	out += fmt.Sprintf("%dm", minutes)
	return out
}
