package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Neon Desk Lamp", "desk"))
	assert.True(t, ContainsFold("Neon Desk Lamp", "NEON"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("Neon Desk Lamp", "chair"))
}

func TestHasPrefixFold(t *testing.T) {
	assert.True(t, HasPrefixFold("Neon Desk Lamp", "neon"))
	assert.False(t, HasPrefixFold("Neon Desk Lamp", "desk"))
	assert.True(t, HasPrefixFold("anything", ""))
}

func TestInRange(t *testing.T) {
	min, max := 10.0, 20.0

	assert.True(t, InRange(15, &min, &max))
	assert.True(t, InRange(10, &min, &max))
	assert.True(t, InRange(20, &min, &max))
	assert.False(t, InRange(9.99, &min, &max))
	assert.False(t, InRange(20.01, &min, &max))
	assert.True(t, InRange(-1000, nil, &max))
	assert.True(t, InRange(1000, &min, nil))
	assert.True(t, InRange(0, nil, nil))
}

func TestInDateRangeInclusiveEndOfDay(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	lateOnLastDay := time.Date(2024, 1, 31, 23, 30, 0, 0, time.UTC)
	assert.True(t, InDateRange(lateOnLastDay, &from, &to))

	nextDay := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, InDateRange(nextDay, &from, &to))

	beforeFrom := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
	assert.False(t, InDateRange(beforeFrom, &from, &to))
}

func TestParseTimeLayouts(t *testing.T) {
	got := ParseTime("2024-06-15")
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), got)

	got = ParseTime("2024-06-15 10:30:00")
	assert.Equal(t, time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC), got)

	got = ParseTime("2024-06-15T10:30:00Z")
	assert.Equal(t, time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC), got)
}

func TestParseTimeGarbageMapsToEpoch(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()

	assert.Equal(t, epoch, ParseTime("not a date"))
	assert.Equal(t, epoch, ParseTime(""))
	assert.Equal(t, epoch, ParseTime("31/12/2024"))
}

func TestRankByScore(t *testing.T) {
	items := []string{"weak", "none", "strong", "medium"}
	scores := map[string]int{"weak": 1, "none": 0, "strong": 9, "medium": 5}

	ranked := RankByScore(items, func(s string) int { return scores[s] })

	assert.Equal(t, []string{"strong", "medium", "weak"}, ranked)
}

func TestRankByScoreTiesKeepOrder(t *testing.T) {
	items := []string{"first", "second", "third"}

	ranked := RankByScore(items, func(string) int { return 3 })

	assert.Equal(t, items, ranked)
}
