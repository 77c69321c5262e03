// Package storage defines the whole-collection persistence contract the
// repositories consume, plus its flat-file and PostgreSQL realizations.
// Load and save are all-or-nothing: there is no partial read/write API,
// so a swap to another datastore never leaks into the query layer.
package storage

import "errors"

var (
	// ErrNotFound signals a lookup miss. It is distinct from validation
	// failures so callers can branch on presence.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable wraps persistence failures (backing store missing,
	// unreadable or unwritable). Writes are not retried: no idempotency
	// key exists to make a retried create safe.
	ErrUnavailable = errors.New("storage unavailable")
)

// Store persists one named collection at a time, whole and atomically.
type Store interface {
	// Load decodes the named collection into dest. A collection that was
	// never saved loads as empty, not as an error.
	Load(collection string, dest any) error

	// Save replaces the named collection with data.
	Save(collection string, data any) error
}
