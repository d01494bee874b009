package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"tranhart-io/api/pkg/models"
)

// CalculateGrowthRate compares the current document count to the count
// that existed before the 30-day cutoff. A model that had nothing before
// the cutoff but has documents now reads as 100% growth.
func CalculateGrowthRate(current, previous int64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

// MonthLabel renders a month bucket the way the dashboard charts expect,
// e.g. "3/2026".
func MonthLabel(month, year int) string {
	return fmt.Sprintf("%d/%d", month, year)
}

// HealthScore is the share of active entities, 100 for an empty system.
func HealthScore(active, total int64) int {
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(active) / float64(total) * 100))
}

func HealthStatus(score int) string {
	switch {
	case score > 80:
		return "excellent"
	case score > 60:
		return "good"
	default:
		return "needs_attention"
	}
}

// AveragePerDay spreads a creation count over the days elapsed since
// from, rounded to two decimals.
func AveragePerDay(total int64, from, now time.Time) float64 {
	days := int64(math.Ceil(now.Sub(from).Hours() / 24))
	if days <= 0 {
		return 0
	}
	return math.Round(float64(total)/float64(days)*100) / 100
}

// MergeActivities sorts the combined feed newest-first and caps it.
func MergeActivities(activities []models.Activity, max int) []models.Activity {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
	if len(activities) > max {
		activities = activities[:max]
	}
	return activities
}
