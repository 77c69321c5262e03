package query

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Sort directions. Direction input is case-insensitive; anything that is
// not "desc" sorts ascending.
const (
	Asc  = "asc"
	Desc = "desc"
)

// KeyFunc extracts the sort key for a field from an item. Implementations
// return "" for unknown fields so they order together.
type KeyFunc[T any] func(item T, field string) any

// NormalizeDirection canonicalizes a direction string.
func NormalizeDirection(direction string) string {
	if strings.EqualFold(direction, Desc) {
		return Desc
	}
	return Asc
}

// Sort orders items in place by a single key. The sort is stable: items
// with equal keys keep their original relative order.
func Sort[T any](items []T, field, direction string, key KeyFunc[T]) {
	desc := NormalizeDirection(direction) == Desc

	sort.SliceStable(items, func(i, j int) bool {
		c := Compare(key(items[i], field), key(items[j], field))
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// Compare orders two extracted keys. Times compare by instant, strings
// case-insensitively, numbers as float64 and bools with false first.
// Mismatched kinds fall back to their string forms.
func Compare(a, b any) int {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ab == bb:
				return 0
			case bb:
				return -1
			default:
				return 1
			}
		}
	}

	return strings.Compare(stringKey(a), stringKey(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func stringKey(v any) string {
	switch s := v.(type) {
	case string:
		return strings.ToLower(s)
	case time.Time:
		return s.UTC().Format(time.RFC3339Nano)
	case nil:
		return ""
	default:
		return strings.ToLower(fmt.Sprint(v))
	}
}
