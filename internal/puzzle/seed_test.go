package puzzle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeedForDate(t *testing.T) {
	newYork := time.FixedZone("UTC-5", -5*60*60)
	tokyo := time.FixedZone("UTC+9", 9*60*60)

	tests := []struct {
		name     string
		date     time.Time
		expected int32
	}{
		{"utc midnight", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 20250115},
		{"utc end of day", time.Date(2025, 1, 15, 23, 59, 59, 999, time.UTC), 20250115},
		{"leap day", time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), 20240229},
		{"behind utc rolls forward", time.Date(2025, 1, 15, 21, 0, 0, 0, newYork), 20250116},
		{"ahead of utc rolls back", time.Date(2025, 1, 15, 3, 0, 0, 0, tokyo), 20250114},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SeedForDate(tt.date))
		})
	}
}

func TestSeedForDate_DistinctAcrossDays(t *testing.T) {
	seen := make(map[int32]time.Time)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() < 2030; d = d.AddDate(0, 0, 1) {
		seed := SeedForDate(d)
		if prev, ok := seen[seed]; ok {
			t.Fatalf("seed %d reused by %s and %s", seed, prev, d)
		}
		seen[seed] = d
	}
}

func TestDateISO(t *testing.T) {
	date := time.Date(2025, 1, 15, 17, 42, 3, 0, time.UTC)
	assert.Equal(t, "2025-01-15T00:00:00.000Z", DateISO(date))
	assert.Equal(t, "20250115", SeedString(SeedForDate(date)))
}
