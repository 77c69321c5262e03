package domain

import "time"

// OrderHistory is one append-only record per status transition. Entries
// are never mutated or reordered; reads filter by order and sort newest
// first.
type OrderHistory struct {
	ID        uint      `json:"id"`
	OrderID   uint      `json:"order_id"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}
