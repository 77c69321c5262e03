package query

import (
	"strings"
	"time"
)

// Filter predicates compose with logical AND: a repository applies every
// supplied predicate and keeps the items for which all of them hold.
// Absent filter values (empty strings, nil pointers) are no-ops.

// ContainsFold reports whether s contains substr, ignoring case. An
// empty substr matches everything.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// HasPrefixFold reports whether s starts with prefix, ignoring case.
func HasPrefixFold(s, prefix string) bool {
	if prefix == "" {
		return true
	}
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

// InRange reports whether v lies inside the inclusive [min, max] bounds.
// A nil bound is open.
func InRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

// InDateRange reports whether t lies inside [from, to]. Both bounds are
// inclusive and a to bound is promoted to the end of its day.
func InDateRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(EndOfDay(*to)) {
		return false
	}
	return true
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// ParseTime parses a date-like string for sort-key extraction. An
// unparsable value maps to the epoch rather than failing the sort; that
// collapses garbage dates to the oldest position by policy.
func ParseTime(s string) time.Time {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}

// RankByScore keeps the items scoring above zero, ordered by descending
// score. Equal scores keep their original relative order.
func RankByScore[T any](items []T, score func(T) int) []T {
	type scored struct {
		item  T
		score int
	}

	ranked := make([]scored, 0, len(items))
	for _, item := range items {
		if s := score(item); s > 0 {
			ranked = append(ranked, scored{item: item, score: s})
		}
	}

	Sort(ranked, "score", Desc, func(s scored, _ string) any {
		return s.score
	})

	out := make([]T, len(ranked))
	for i, s := range ranked {
		out[i] = s.item
	}
	return out
}
