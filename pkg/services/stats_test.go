package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tranhart-io/api/pkg/models"
)

func TestCalculateGrowthRate(t *testing.T) {
	cases := []struct {
		name     string
		current  int64
		previous int64
		want     int
	}{
		{"no data at all", 0, 0, 0},
		{"first documents ever", 5, 0, 100},
		{"doubled", 10, 5, 100},
		{"halved", 5, 10, -50},
		{"flat", 7, 7, 0},
		{"rounds to nearest", 3, 2, 50},
		{"rounds up", 13, 6, 117},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateGrowthRate(tc.current, tc.previous))
		})
	}
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "3/2026", MonthLabel(3, 2026))
	assert.Equal(t, "12/2025", MonthLabel(12, 2025))
}

func TestHealthScore(t *testing.T) {
	assert.Equal(t, 100, HealthScore(0, 0))
	assert.Equal(t, 100, HealthScore(10, 10))
	assert.Equal(t, 50, HealthScore(5, 10))
	assert.Equal(t, 67, HealthScore(2, 3))
	assert.Equal(t, 0, HealthScore(0, 4))
}

func TestHealthStatus(t *testing.T) {
	assert.Equal(t, "excellent", HealthStatus(100))
	assert.Equal(t, "excellent", HealthStatus(81))
	assert.Equal(t, "good", HealthStatus(80))
	assert.Equal(t, "good", HealthStatus(61))
	assert.Equal(t, "needs_attention", HealthStatus(60))
	assert.Equal(t, "needs_attention", HealthStatus(0))
}

func TestAveragePerDay(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 2.0, AveragePerDay(20, now.AddDate(0, 0, -10), now))
	assert.Equal(t, 0.33, AveragePerDay(1, now.AddDate(0, 0, -3), now))
	assert.Equal(t, 0.0, AveragePerDay(5, now, now))
	assert.Equal(t, 0.0, AveragePerDay(5, now.Add(time.Hour), now))
}

func TestMergeActivitiesSortsAndCaps(t *testing.T) {
	now := time.Now()
	activities := []models.Activity{
		{Action: "Category created", CreatedAt: now.Add(-2 * time.Hour)},
		{Action: "Artwork added", CreatedAt: now},
		{Action: "New user registered", CreatedAt: now.Add(-1 * time.Hour)},
	}

	merged := MergeActivities(activities, 2)

	assert.Len(t, merged, 2)
	assert.Equal(t, "Artwork added", merged[0].Action)
	assert.Equal(t, "New user registered", merged[1].Action)
}

func TestMergeActivitiesUnderCap(t *testing.T) {
	now := time.Now()
	activities := []models.Activity{
		{Action: "Artwork added", CreatedAt: now},
	}

	merged := MergeActivities(activities, 8)
	assert.Len(t, merged, 1)
}

func TestMergeActivitiesStableForEqualTimestamps(t *testing.T) {
	at := time.Now()
	activities := []models.Activity{
		{Action: "first", CreatedAt: at},
		{Action: "second", CreatedAt: at},
	}

	merged := MergeActivities(activities, 8)

	assert.Equal(t, "first", merged[0].Action)
	assert.Equal(t, "second", merged[1].Action)
}
