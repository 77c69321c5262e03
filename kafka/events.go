package kafka

import "time"

// OrderItemEvent is the per-line payload of an order event.
type OrderItemEvent struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// OrderPlacedEvent is published when an order is created.
type OrderPlacedEvent struct {
	EventID     string           `json:"event_id"`
	EventType   string           `json:"event_type"`
	OrderID     uint             `json:"order_id"`
	OrderNumber string           `json:"order_number"`
	CustomerID  uint             `json:"customer_id"`
	Items       []OrderItemEvent `json:"items"`
	Total       float64          `json:"total"`
	Timestamp   time.Time        `json:"timestamp"`
}

// OrderStatusChangedEvent is published on every status transition.
type OrderStatusChangedEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	OrderID        uint      `json:"order_id"`
	OrderNumber    string    `json:"order_number"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Timestamp      time.Time `json:"timestamp"`
}

// Event types.
const (
	EventTypeOrderPlaced        = "order.placed"
	EventTypeOrderStatusChanged = "order.status_changed"
)

// Kafka topics.
const (
	TopicOrderPlaced        = "order-placed"
	TopicOrderStatusChanged = "order-status-changed"
)
