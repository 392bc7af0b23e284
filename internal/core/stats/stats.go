// Package stats derives the dashboard aggregates from a visibility-filtered
// activity list. Every function is pure: same input, same output, no store
// or clock access except where a reference time is passed in explicitly.
package stats

import (
	"sort"
	"time"

	"github.com/workpulse/workpulse-api/internal/core/domain"
)

// StatusCounts tallies the latest status of each distinct employee.
type StatusCounts struct {
	Active     int `json:"active"`
	Idle       int `json:"idle"`
	Suspicious int `json:"suspicious"`
}

// MinutePoint is one bucket of the per-minute time series.
type MinutePoint struct {
	Time  string `json:"time"`
	Count int    `json:"count"`
}

// DayBreakdown sums today's snapshots per status; each record counts as
// roughly one minute of tracked time.
type DayBreakdown struct {
	ActiveMinutes     int `json:"activeMinutes"`
	IdleMinutes       int `json:"idleMinutes"`
	SuspiciousMinutes int `json:"suspiciousMinutes"`
	TotalMinutes      int `json:"totalMinutes"`
}

// LatestStatusByEmployee keeps only the newest record per employee and
// tallies those statuses. Input must be sorted newest-first, which is the
// store's list order. Records with an unrecognized status are dropped from
// the tally on purpose: the dashboard only renders the three known buckets.
func LatestStatusByEmployee(activities []domain.Activity) StatusCounts {
	seen := make(map[string]struct{}, len(activities))
	var counts StatusCounts

	for _, a := range activities {
		if _, ok := seen[a.EmployeeID]; ok {
			continue
		}
		seen[a.EmployeeID] = struct{}{}

		switch a.Status {
		case domain.StatusActive:
			counts.Active++
		case domain.StatusIdle:
			counts.Idle++
		case domain.StatusSuspicious:
			counts.Suspicious++
		}
	}
	return counts
}

// HourlyHistogram buckets records by the local hour-of-day of CreatedAt,
// independent of calendar day. Always returns exactly 24 buckets.
func HourlyHistogram(activities []domain.Activity) [24]int {
	var hours [24]int
	for _, a := range activities {
		hours[a.CreatedAt.Local().Hour()]++
	}
	return hours
}

// HeatmapIntensity maps hourly counts to 0..1 shades. When every bucket is
// zero the maximum is clamped to one so each cell gets the baseline shade
// instead of dividing by zero.
func HeatmapIntensity(hours [24]int) [24]float64 {
	max := 1
	for _, c := range hours {
		if c > max {
			max = c
		}
	}

	var out [24]float64
	for i, c := range hours {
		out[i] = float64(c) / float64(max)
	}
	return out
}

// TimeSeriesByMinute buckets records by the HH:MM rendering of CreatedAt and
// returns the buckets sorted lexicographically by label. Empty input yields
// an empty, non-nil series.
func TimeSeriesByMinute(activities []domain.Activity) []MinutePoint {
	buckets := make(map[string]int)
	for _, a := range activities {
		if a.CreatedAt.IsZero() {
			continue
		}
		buckets[a.CreatedAt.Local().Format("15:04")]++
	}

	out := make([]MinutePoint, 0, len(buckets))
	for label, count := range buckets {
		out = append(out, MinutePoint{Time: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// DailyBreakdown sums snapshots recorded since local midnight of now.
func DailyBreakdown(activities []domain.Activity, now time.Time) DayBreakdown {
	local := now.Local()
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())

	var b DayBreakdown
	for _, a := range activities {
		if a.CreatedAt.Local().Before(midnight) {
			continue
		}
		switch a.Status {
		case domain.StatusActive:
			b.ActiveMinutes++
		case domain.StatusIdle:
			b.IdleMinutes++
		case domain.StatusSuspicious:
			b.SuspiciousMinutes++
		}
	}
	b.TotalMinutes = b.ActiveMinutes + b.IdleMinutes + b.SuspiciousMinutes
	return b
}
